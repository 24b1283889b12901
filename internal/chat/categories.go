package chat

// Category is a quick-start topic. Picking one submits its canned query on
// the user's behalf.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Query       string `json:"query"`
	Emergency   bool   `json:"emergency"`
}

var healthCategories = []Category{
	{
		ID:          "symptoms",
		Title:       "Symptom Checker",
		Description: "Check symptoms and get guidance",
		Query:       "I have some symptoms I'd like to check",
	},
	{
		ID:          "vaccination",
		Title:       "Vaccination Schedule",
		Description: "Child & adult vaccination info",
		Query:       "I need vaccination schedule information",
	},
	{
		ID:          "maternal",
		Title:       "Maternal Health",
		Description: "Pregnancy & newborn care",
		Query:       "I need maternal health guidance",
	},
	{
		ID:          "chronic",
		Title:       "Chronic Diseases",
		Description: "Diabetes, BP, heart conditions",
		Query:       "I need information about chronic diseases",
	},
	{
		ID:          "preventive",
		Title:       "Preventive Care",
		Description: "Health tips & prevention",
		Query:       "I want preventive healthcare tips",
	},
	{
		ID:          "emergency",
		Title:       "Emergency Care",
		Description: "First aid & urgent symptoms",
		Query:       "I need emergency health guidance",
		Emergency:   true,
	},
	{
		ID:          "elderly",
		Title:       "Elderly Care",
		Description: "Senior health guidance",
		Query:       "I need elderly care information",
	},
	{
		ID:          "schedule",
		Title:       "Health Calendar",
		Description: "Track appointments & schedules",
		Query:       "I want to manage my health calendar",
	},
}

// Categories returns the quick-start topics in display order.
func Categories() []Category {
	out := make([]Category, len(healthCategories))
	copy(out, healthCategories)
	return out
}

func categoryByID(id string) (Category, bool) {
	for _, c := range healthCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
