// Package nav holds the navigation tree, the content router built from it,
// and the pure selection/expansion transitions that drive the sidebar.
package nav

// Kind tags the content unit a section renders.
type Kind int

const (
	KindGeneric Kind = iota
	KindDashboard
	KindUsers
	KindAnalytics
	KindChartGallery
)

func (k Kind) String() string {
	switch k {
	case KindDashboard:
		return "dashboard"
	case KindUsers:
		return "users"
	case KindAnalytics:
		return "analytics"
	case KindChartGallery:
		return "chart-gallery"
	default:
		return "generic"
	}
}

// Content describes what the main area shows for a section.
type Content struct {
	Kind        Kind
	Title       string
	Description string
	Resource    string // mock fetch key, empty for static content
}

// Item is one node of the navigation tree. Top-level IDs are dot-free and
// children are namespaced as "parent.child". The tree is two levels deep.
type Item struct {
	ID       string
	Label    string
	Icon     string
	Content  Content
	Children []Item
}

// HasChildren reports whether the item expands into sub-items.
func (i Item) HasChildren() bool { return len(i.Children) > 0 }

func generic(title, description string) Content {
	return Content{Kind: KindGeneric, Title: title, Description: description}
}

// DefaultTree returns the built-in application navigation.
func DefaultTree() []Item {
	users := Content{Kind: KindUsers, Title: "Users Management", Description: "Manage your application users", Resource: "/api/users"}
	analytics := Content{Kind: KindAnalytics, Title: "Analytics Overview", Description: "Interactive charts showing your application metrics and insights.", Resource: "/api/analytics"}

	return []Item{
		{
			ID:      "dashboard",
			Label:   "Dashboard",
			Icon:    "⌂",
			Content: Content{Kind: KindDashboard, Title: "Dashboard", Description: "Welcome to your application dashboard", Resource: "/api/dashboard"},
		},
		{
			ID:      "users",
			Label:   "Users",
			Icon:    "☺",
			Content: users,
			Children: []Item{
				{ID: "users.list", Label: "All Users", Icon: "☷", Content: users},
				{ID: "users.add", Label: "Add User", Icon: "+", Content: generic("Add New User", "Create a new user account in the system.")},
				{ID: "users.roles", Label: "User Roles", Icon: "⚿", Content: generic("User Roles Management", "Manage user roles and permissions.")},
			},
		},
		{
			ID:      "analytics",
			Label:   "Analytics",
			Icon:    "▥",
			Content: analytics,
			Children: []Item{
				{ID: "analytics.overview", Label: "Overview", Icon: "◔", Content: analytics},
				{ID: "analytics.usage", Label: "Usage Stats", Icon: "◫", Content: Content{Kind: KindChartGallery, Title: "Usage Statistics", Description: "Detailed usage statistics and metrics."}},
				{ID: "analytics.reports", Label: "Reports", Content: generic("Analytics Reports", "Generate and view detailed reports.")},
			},
		},
		{
			ID:      "documents",
			Label:   "Documents",
			Icon:    "▤",
			Content: generic("Recent Documents", "View your recently accessed documents."),
			Children: []Item{
				{ID: "documents.recent", Label: "Recent Files", Icon: "◷", Content: generic("Recent Documents", "View your recently accessed documents.")},
				{ID: "documents.folders", Label: "Folders", Icon: "▭", Content: generic("Document Folders", "Organize documents in folders.")},
			},
		},
		{
			ID:      "settings",
			Label:   "Settings",
			Icon:    "⚙",
			Content: generic("General Settings", "Configure general application settings."),
			Children: []Item{
				{ID: "settings.general", Label: "General", Content: generic("General Settings", "Configure general application settings.")},
				{ID: "settings.appearance", Label: "Appearance", Icon: "◐", Content: generic("Appearance Settings", "Customize the application appearance.")},
				{ID: "settings.notifications", Label: "Notifications", Icon: "♪", Content: generic("Notification Settings", "Manage notification preferences.")},
			},
		},
	}
}
