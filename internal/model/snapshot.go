package model

// Snapshot is the exportable state: everything except achievements.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	SavingsGoals []SavingsGoal `json:"savingsGoals"`
	Bills        []Bill        `json:"bills"`
}
