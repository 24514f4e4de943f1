package content

// Set names of the built-in catalog.
const (
	InterviewSheet = "interview-sheet"
	TopicCalendar  = "topic-calendar"
)

func problem(id, title, category string, d Difficulty) Item {
	return Item{ID: id, Title: title, Category: category, Difficulty: d, XP: d.XP()}
}

func topic(id, title, category string) Item {
	return Item{ID: id, Title: title, Category: category, Difficulty: Medium, XP: 30}
}

// Default returns the built-in catalog. It panics if the built-in sets are
// inconsistent, which is a programming error.
func Default() Catalog {
	c, err := NewCatalog(interviewSheet(), topicCalendar())
	if err != nil {
		panic(err)
	}
	return c
}

func interviewSheet() Set {
	return Set{
		Name:  InterviewSheet,
		Title: "Interview Problem Sheet",
		Items: []Item{
			problem("two-sum", "Two Sum", "arrays", Easy),
			problem("contains-duplicate", "Contains Duplicate", "arrays", Easy),
			problem("valid-anagram", "Valid Anagram", "strings", Easy),
			problem("group-anagrams", "Group Anagrams", "strings", Medium),
			problem("top-k-frequent", "Top K Frequent Elements", "heaps", Medium),
			problem("product-except-self", "Product of Array Except Self", "arrays", Medium),
			problem("longest-consecutive", "Longest Consecutive Sequence", "arrays", Medium),
			problem("valid-palindrome", "Valid Palindrome", "two-pointers", Easy),
			problem("three-sum", "3Sum", "two-pointers", Medium),
			problem("trapping-rain-water", "Trapping Rain Water", "two-pointers", Hard),
			problem("best-time-stock", "Best Time to Buy and Sell Stock", "sliding-window", Easy),
			problem("longest-substring", "Longest Substring Without Repeating Characters", "sliding-window", Medium),
			problem("min-window-substring", "Minimum Window Substring", "sliding-window", Hard),
			problem("valid-parentheses", "Valid Parentheses", "stack", Easy),
			problem("daily-temperatures", "Daily Temperatures", "stack", Medium),
			problem("largest-rectangle", "Largest Rectangle in Histogram", "stack", Hard),
			problem("binary-search", "Binary Search", "binary-search", Easy),
			problem("search-rotated", "Search in Rotated Sorted Array", "binary-search", Medium),
			problem("median-two-arrays", "Median of Two Sorted Arrays", "binary-search", Hard),
			problem("reverse-linked-list", "Reverse Linked List", "linked-list", Easy),
			problem("lru-cache", "LRU Cache", "linked-list", Medium),
			problem("merge-k-lists", "Merge K Sorted Lists", "linked-list", Hard),
			problem("invert-tree", "Invert Binary Tree", "trees", Easy),
			problem("level-order", "Binary Tree Level Order Traversal", "trees", Medium),
			problem("serialize-tree", "Serialize and Deserialize Binary Tree", "trees", Hard),
			problem("number-of-islands", "Number of Islands", "graphs", Medium),
			problem("course-schedule", "Course Schedule", "graphs", Medium),
			problem("word-ladder", "Word Ladder", "graphs", Hard),
			problem("climbing-stairs", "Climbing Stairs", "dynamic-programming", Easy),
			problem("coin-change", "Coin Change", "dynamic-programming", Medium),
			problem("longest-common-subsequence", "Longest Common Subsequence", "dynamic-programming", Medium),
			problem("edit-distance", "Edit Distance", "dynamic-programming", Hard),
			problem("merge-intervals", "Merge Intervals", "intervals", Medium),
			problem("jump-game", "Jump Game", "greedy", Medium),
		},
	}
}

func topicCalendar() Set {
	return Set{
		Name:  TopicCalendar,
		Title: "30-Day Topic Calendar",
		Items: []Item{
			topic("day-01", "Arrays and hashing", "dsa"),
			topic("day-02", "Two pointers", "dsa"),
			topic("day-03", "Sliding window", "dsa"),
			topic("day-04", "Stacks and queues", "dsa"),
			topic("day-05", "Binary search", "dsa"),
			topic("day-06", "Linked lists", "dsa"),
			topic("day-07", "Weekly review", "review"),
			topic("day-08", "Trees and traversals", "dsa"),
			topic("day-09", "Binary search trees", "dsa"),
			topic("day-10", "Heaps", "dsa"),
			topic("day-11", "Tries", "dsa"),
			topic("day-12", "Graphs: BFS and DFS", "dsa"),
			topic("day-13", "Topological sort", "dsa"),
			topic("day-14", "Weekly review", "review"),
			topic("day-15", "Recursion and backtracking", "dsa"),
			topic("day-16", "Dynamic programming basics", "dsa"),
			topic("day-17", "Dynamic programming on grids", "dsa"),
			topic("day-18", "Greedy algorithms", "dsa"),
			topic("day-19", "Intervals", "dsa"),
			topic("day-20", "Bit manipulation", "dsa"),
			topic("day-21", "Weekly review", "review"),
			topic("day-22", "Operating systems", "cs-fundamentals"),
			topic("day-23", "Computer networks", "cs-fundamentals"),
			topic("day-24", "Databases and indexing", "cs-fundamentals"),
			topic("day-25", "System design: scaling basics", "system-design"),
			topic("day-26", "System design: caching and queues", "system-design"),
			topic("day-27", "System design: case study", "system-design"),
			topic("day-28", "Behavioral stories", "behavioral"),
			topic("day-29", "Mock interview", "interview"),
			topic("day-30", "Final review", "review"),
		},
	}
}
