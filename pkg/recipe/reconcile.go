package recipe

// ReconcilePlan is the set of row operations that turns a recipe's
// current ingredient associations into the requested ones. Surviving
// rows are updated in place so their identity is preserved.
type ReconcilePlan struct {
	Remove []uint
	Update map[uint]float64
	Add    map[uint]float64
}

// ReconcileIngredients diffs the current (ingredientID -> quantity)
// associations against the requested set. It touches no storage.
func ReconcileIngredients(current map[uint]float64, requested map[uint]float64) ReconcilePlan {
	plan := ReconcilePlan{
		Update: make(map[uint]float64),
		Add:    make(map[uint]float64),
	}

	for id := range current {
		if _, ok := requested[id]; !ok {
			plan.Remove = append(plan.Remove, id)
		}
	}

	for id, quantity := range requested {
		if _, ok := current[id]; ok {
			plan.Update[id] = quantity
		} else {
			plan.Add[id] = quantity
		}
	}

	return plan
}
