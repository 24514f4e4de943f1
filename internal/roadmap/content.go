package roadmap

// Focus narrows development content to one side of the stack.
type Focus string

const (
	FocusAny      Focus = ""
	FocusFrontend Focus = "frontend"
	FocusBackend  Focus = "backend"
)

// Content is a static study unit that fills one roadmap day.
type Content struct {
	Key       string
	Title     string
	Topics    []string
	Resources []Resource
	XP        int
	Category  Category
	Focus     Focus
}

// Pools groups content by category. Order within a pool is the study order.
type Pools struct {
	DSA            []Content
	Development    []Content
	CSFundamentals []Content
	Project        []Content
	Interview      []Content
}

const (
	dsaXP       = 50
	devXP       = 60
	csXP        = 40
	projectXP   = 100
	interviewXP = 75
)

func practice(name, link string) Resource { return Resource{Name: name, Link: link, Type: "practice"} }
func article(name, link string) Resource  { return Resource{Name: name, Link: link, Type: "article"} }
func video(name, link string) Resource    { return Resource{Name: name, Link: link, Type: "video"} }
func docs(name, link string) Resource     { return Resource{Name: name, Link: link, Type: "docs"} }

func dsa(key, title string, topics []string, res ...Resource) Content {
	return Content{Key: key, Title: title, Topics: topics, Resources: res, XP: dsaXP, Category: CategoryDSA}
}

func dev(key, title string, focus Focus, topics []string, res ...Resource) Content {
	return Content{Key: key, Title: title, Topics: topics, Resources: res, XP: devXP, Category: CategoryDevelopment, Focus: focus}
}

func cs(key, title string, topics []string, res ...Resource) Content {
	return Content{Key: key, Title: title, Topics: topics, Resources: res, XP: csXP, Category: CategoryCSFundamentals}
}

func project(key, title string, focus Focus, topics []string, res ...Resource) Content {
	return Content{Key: key, Title: title, Topics: topics, Resources: res, XP: projectXP, Category: CategoryProject, Focus: focus}
}

func interview(key, title string, topics []string, res ...Resource) Content {
	return Content{Key: key, Title: title, Topics: topics, Resources: res, XP: interviewXP, Category: CategoryInterview}
}

const (
	neetcode  = "https://neetcode.io/roadmap"
	leetcode  = "https://leetcode.com/problemset/"
	cpAlgo    = "https://cp-algorithms.com/"
	mdn       = "https://developer.mozilla.org/en-US/docs/Web"
	reactDocs = "https://react.dev/learn"
	sdPrimer  = "https://github.com/donnemartin/system-design-primer"
	ostep     = "https://pages.cs.wisc.edu/~remzi/OSTEP/"
)

// DefaultPools returns the built-in content pools.
func DefaultPools() Pools {
	return Pools{
		DSA: []Content{
			dsa("arrays-hashing", "Arrays & Hashing", []string{"Two Sum", "Group Anagrams", "Top K Frequent Elements"},
				practice("NeetCode Arrays & Hashing", neetcode), video("Hash maps explained", "https://www.youtube.com/watch?v=shs0KM3wKv8")),
			dsa("two-pointers", "Two Pointers", []string{"Valid Palindrome", "3Sum", "Container With Most Water"},
				practice("NeetCode Two Pointers", neetcode)),
			dsa("sliding-window", "Sliding Window", []string{"Best Time to Buy and Sell Stock", "Longest Substring Without Repeating Characters", "Minimum Window Substring"},
				practice("NeetCode Sliding Window", neetcode)),
			dsa("stack", "Stack", []string{"Valid Parentheses", "Min Stack", "Daily Temperatures"},
				practice("LeetCode Stack problems", leetcode+"?topicSlugs=stack")),
			dsa("binary-search", "Binary Search", []string{"Search in Rotated Sorted Array", "Koko Eating Bananas", "Median of Two Sorted Arrays"},
				practice("NeetCode Binary Search", neetcode), article("Binary search variants", cpAlgo+"num_methods/binary_search.html")),
			dsa("linked-list", "Linked List", []string{"Reverse Linked List", "Merge K Sorted Lists", "LRU Cache"},
				practice("LeetCode Linked List problems", leetcode+"?topicSlugs=linked-list")),
			dsa("trees", "Trees", []string{"Invert Binary Tree", "Lowest Common Ancestor", "Serialize and Deserialize Binary Tree"},
				practice("NeetCode Trees", neetcode)),
			dsa("tries", "Tries", []string{"Implement Trie", "Word Search II"},
				practice("LeetCode Trie problems", leetcode+"?topicSlugs=trie")),
			dsa("heaps", "Heap / Priority Queue", []string{"Kth Largest Element", "Find Median from Data Stream", "Task Scheduler"},
				practice("NeetCode Heap", neetcode)),
			dsa("backtracking", "Backtracking", []string{"Subsets", "Combination Sum", "N-Queens"},
				practice("NeetCode Backtracking", neetcode)),
			dsa("graphs", "Graphs", []string{"Number of Islands", "Course Schedule", "Pacific Atlantic Water Flow"},
				practice("NeetCode Graphs", neetcode), article("BFS and DFS", cpAlgo+"graph/breadth-first-search.html")),
			dsa("advanced-graphs", "Advanced Graphs", []string{"Dijkstra", "Union Find", "Minimum Spanning Tree"},
				article("Dijkstra's algorithm", cpAlgo+"graph/dijkstra.html")),
			dsa("dp-1d", "1-D Dynamic Programming", []string{"Climbing Stairs", "House Robber", "Longest Increasing Subsequence"},
				practice("NeetCode 1-D DP", neetcode)),
			dsa("dp-2d", "2-D Dynamic Programming", []string{"Unique Paths", "Longest Common Subsequence", "Edit Distance"},
				practice("NeetCode 2-D DP", neetcode)),
			dsa("greedy", "Greedy", []string{"Jump Game", "Gas Station", "Merge Intervals"},
				practice("LeetCode Greedy problems", leetcode+"?topicSlugs=greedy")),
			dsa("intervals", "Intervals", []string{"Insert Interval", "Non-overlapping Intervals", "Meeting Rooms II"},
				practice("NeetCode Intervals", neetcode)),
			dsa("bit-manipulation", "Bit Manipulation", []string{"Single Number", "Counting Bits", "Reverse Bits"},
				article("Bit manipulation", cpAlgo+"algebra/bit-manipulation.html")),
			dsa("math-geometry", "Math & Geometry", []string{"Rotate Image", "Spiral Matrix", "Pow(x, n)"},
				practice("NeetCode Math & Geometry", neetcode)),
		},
		Development: []Content{
			dev("html-css", "HTML & CSS Fundamentals", FocusFrontend, []string{"Semantic HTML", "Flexbox", "Grid", "Responsive design"},
				docs("MDN HTML", mdn+"/HTML"), docs("MDN CSS", mdn+"/CSS")),
			dev("javascript-core", "JavaScript Core", FocusAny, []string{"Closures", "Prototypes", "Event loop", "Promises and async/await"},
				docs("MDN JavaScript", mdn+"/JavaScript")),
			dev("typescript", "TypeScript", FocusAny, []string{"Type narrowing", "Generics", "Utility types"},
				docs("TypeScript Handbook", "https://www.typescriptlang.org/docs/handbook/intro.html")),
			dev("react-basics", "React Basics", FocusFrontend, []string{"Components and props", "State", "Effects"},
				docs("React Learn", reactDocs)),
			dev("react-advanced", "Advanced React", FocusFrontend, []string{"Context", "Memoization", "Custom hooks", "Suspense"},
				docs("React reference", "https://react.dev/reference/react")),
			dev("browser-performance", "Browser Performance", FocusFrontend, []string{"Critical rendering path", "Core Web Vitals", "Code splitting"},
				article("web.dev performance", "https://web.dev/learn/performance")),
			dev("accessibility", "Accessibility", FocusFrontend, []string{"ARIA roles", "Keyboard navigation", "Color contrast"},
				docs("MDN Accessibility", mdn+"/Accessibility")),
			dev("state-management", "State Management", FocusFrontend, []string{"Redux Toolkit", "Zustand", "Server state caching"},
				docs("Redux Toolkit", "https://redux-toolkit.js.org/introduction/getting-started")),
			dev("http-rest", "HTTP & REST APIs", FocusAny, []string{"HTTP methods and status codes", "REST resource design", "Idempotency"},
				docs("MDN HTTP", mdn+"/HTTP")),
			dev("node-express", "Node.js & Express", FocusBackend, []string{"Middleware", "Routing", "Error handling"},
				docs("Express guide", "https://expressjs.com/en/guide/routing.html")),
			dev("sql-databases", "SQL Databases", FocusBackend, []string{"Joins", "Indexes", "Transactions and isolation"},
				article("Use The Index, Luke", "https://use-the-index-luke.com/")),
			dev("nosql-caching", "NoSQL & Caching", FocusBackend, []string{"Document stores", "Redis data types", "Cache invalidation"},
				docs("Redis docs", "https://redis.io/docs/latest/")),
			dev("auth", "Authentication & Authorization", FocusAny, []string{"Sessions vs JWT", "OAuth 2.0", "Password hashing"},
				article("OWASP Authentication Cheat Sheet", "https://cheatsheetseries.owasp.org/cheatsheets/Authentication_Cheat_Sheet.html")),
			dev("testing", "Testing", FocusAny, []string{"Unit tests", "Integration tests", "Mocking"},
				article("The Practical Test Pyramid", "https://martinfowler.com/articles/practical-test-pyramid.html")),
			dev("message-queues", "Message Queues", FocusBackend, []string{"Pub/sub", "At-least-once delivery", "Dead letter queues"},
				docs("RabbitMQ tutorials", "https://www.rabbitmq.com/tutorials")),
			dev("docker-ci", "Docker & CI/CD", FocusAny, []string{"Dockerfiles", "Multi-stage builds", "CI pipelines"},
				docs("Docker get started", "https://docs.docker.com/get-started/")),
			dev("git", "Git Workflows", FocusAny, []string{"Branching", "Rebase vs merge", "Resolving conflicts"},
				docs("Pro Git", "https://git-scm.com/book/en/v2")),
		},
		CSFundamentals: []Content{
			cs("complexity", "Time & Space Complexity", []string{"Big-O", "Amortized analysis", "Recursion trees"},
				article("Big-O cheat sheet", "https://www.bigocheatsheet.com/")),
			cs("os-processes", "Processes & Threads", []string{"Scheduling", "Context switches", "Thread vs process"},
				docs("OSTEP", ostep)),
			cs("os-concurrency", "Concurrency", []string{"Locks", "Deadlock", "Semaphores and condition variables"},
				docs("OSTEP concurrency", ostep)),
			cs("os-memory", "Memory Management", []string{"Virtual memory", "Paging", "Caching"},
				docs("OSTEP virtualization", ostep)),
			cs("networking", "Computer Networks", []string{"TCP vs UDP", "DNS", "TLS handshake", "What happens when you type a URL"},
				article("High Performance Browser Networking", "https://hpbn.co/")),
			cs("dbms", "Database Internals", []string{"Normalization", "ACID", "B-trees and LSM trees"},
				article("CMU Database Systems", "https://15445.courses.cs.cmu.edu/")),
			cs("oop-design", "OOP & Design Patterns", []string{"SOLID", "Factory", "Observer", "Strategy"},
				article("Refactoring Guru patterns", "https://refactoring.guru/design-patterns")),
			cs("system-design-basics", "System Design Basics", []string{"Load balancing", "Caching", "Sharding", "CAP theorem"},
				article("System Design Primer", sdPrimer)),
			cs("system-design-cases", "System Design Case Studies", []string{"URL shortener", "News feed", "Rate limiter", "Chat system"},
				article("System Design Primer", sdPrimer), video("System design interview walkthroughs", "https://www.youtube.com/@SystemDesignInterview")),
			cs("distributed-systems", "Distributed Systems", []string{"Replication", "Consensus", "Consistency models"},
				article("Designing Data-Intensive Applications", "https://dataintensive.net/")),
		},
		Project: []Content{
			project("portfolio-site", "Project: Portfolio Site", FocusFrontend, []string{"Responsive layout", "Deploy to a static host", "Lighthouse audit"}),
			project("rest-api", "Project: REST API Service", FocusBackend, []string{"CRUD endpoints", "Validation", "Persistence", "Tests"}),
			project("dashboard-app", "Project: Dashboard App", FocusFrontend, []string{"Charts", "Data fetching", "Loading and error states"}),
			project("auth-service", "Project: Auth Service", FocusBackend, []string{"Signup and login", "Token refresh", "Rate limiting"}),
			project("full-stack-app", "Project: Full Stack App", FocusAny, []string{"Frontend and API integration", "Database schema", "Deployment"}),
			project("realtime-chat", "Project: Realtime Chat", FocusAny, []string{"WebSockets", "Presence", "Message history"}),
			project("cli-tool", "Project: Developer CLI Tool", FocusBackend, []string{"Argument parsing", "Config files", "Packaging"}),
			project("project-polish", "Project Polish & README", FocusAny, []string{"Write the README", "Add screenshots", "Document trade-offs"}),
		},
		Interview: []Content{
			interview("resume", "Resume & Profile", []string{"Impact-driven bullet points", "GitHub profile cleanup", "LinkedIn headline"},
				article("Tech Interview Handbook resume guide", "https://www.techinterviewhandbook.org/resume/")),
			interview("behavioral-star", "Behavioral: STAR Stories", []string{"Conflict", "Failure", "Leadership", "Ambiguity"},
				article("Tech Interview Handbook behavioral", "https://www.techinterviewhandbook.org/behavioral-interview/")),
			interview("mock-coding", "Mock Coding Interview", []string{"Timed medium problem", "Think aloud", "Test your code"},
				practice("Pramp", "https://www.pramp.com/")),
			interview("mock-system-design", "Mock System Design Interview", []string{"Requirements gathering", "High-level design", "Deep dive"},
				article("System Design Primer", sdPrimer)),
			interview("company-research", "Company Research", []string{"Products and values", "Recent engineering blog posts", "Questions to ask"}),
			interview("timed-contest", "Timed Contest", []string{"Virtual contest", "Review missed problems"},
				practice("LeetCode contests", "https://leetcode.com/contest/")),
			interview("negotiation", "Offer Negotiation", []string{"Market data", "Competing offers", "Total compensation"},
				article("Levels.fyi", "https://www.levels.fyi/")),
			interview("final-review", "Final Review", []string{"Revisit weak topics", "Re-solve flagged problems", "Rest well"}),
		},
	}
}
