package doubts

// SeedDoubts is the starter feed content for fresh installs.
func SeedDoubts() []Doubt {
	return []Doubt{
		{
			ID:        "1",
			UserID:    "u1",
			Content:   "Can someone explain the difference between Process and Thread?",
			Response:  "A process is a self-contained execution environment with its own memory space, while a thread is a smaller execution unit within a process that shares the same memory.",
			Status:    StatusResolved,
			CreatedAt: "2023-10-24T10:00:00Z",
		},
	}
}
