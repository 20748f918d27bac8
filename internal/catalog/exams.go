package catalog

var sampleQuestions = []Question{
	{
		ID:            "q1",
		Topic:         "Data Structures",
		Content:       "What is the time complexity of searching for an element in a Balanced Binary Search Tree?",
		Options:       []string{"O(1)", "O(n)", "O(log n)", "O(n^2)"},
		CorrectOption: 2,
		Explanation:   "A balanced BST ensures the height is logarithmic to the number of nodes.",
		Weight:        1,
	},
	{
		ID:            "q2",
		Topic:         "Operating Systems",
		Content:       "Which of the following is not a process state?",
		Options:       []string{"New", "Running", "Waiting", "Executing"},
		CorrectOption: 3,
		Explanation:   "Process states are New, Ready, Running, Waiting, and Terminated. Executing is a conceptual term but not a state name.",
		Weight:        1,
	},
	{
		ID:            "q3",
		Topic:         "Computer Networks",
		Content:       "Which layer of the OSI model is responsible for routing?",
		Options:       []string{"Data Link", "Transport", "Network", "Physical"},
		CorrectOption: 2,
		Explanation:   "The Network layer handles logical addressing and routing packets.",
		Weight:        1,
	},
	{
		ID:            "q4",
		Topic:         "Data Structures",
		Content:       "Which data structure follows LIFO principle?",
		Options:       []string{"Queue", "Stack", "LinkedList", "Tree"},
		CorrectOption: 1,
		Explanation:   "Stack follows Last-In-First-Out (LIFO).",
		Weight:        1,
	},
}

var exams = []Exam{
	{
		ID:              "exam1",
		Title:           "Computer Science Fundamentals",
		Description:     "A comprehensive quiz covering OS, DSA, and Networking.",
		DurationMinutes: 30,
		TotalMarks:      4,
		Category:        "Computer Science",
		Questions:       sampleQuestions,
	},
	{
		ID:              "exam2",
		Title:           "Operating Systems Deep Dive",
		Description:     "Detailed analysis of scheduling and memory management.",
		DurationMinutes: 45,
		TotalMarks:      10,
		Category:        "OS",
		Questions:       sampleQuestions[1:2],
	},
}
