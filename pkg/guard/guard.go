package guard

import "Api-Recipes/domain"

// AssertOwner rejects mutations on owner-scoped resources coming from
// anyone other than the owner.
func AssertOwner(ownerID uint, requesterID uint) error {
	if ownerID != requesterID {
		return domain.ErrAccessDenied
	}
	return nil
}
