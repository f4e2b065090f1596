package cqrs

// ---------- User queries ----------

// GetUserQuery fetches a single user by ID, subject to ownership check.
// Admins may fetch any user.
type GetUserQuery struct {
	UserID           string
	RequestingUserID string
	RequestingRole   string
}

// ListUsersQuery fetches every user, optionally only the unapproved queue.
type ListUsersQuery struct {
	PendingOnly bool
}

// ---------- Account queries ----------

// ListAccountsQuery fetches all accounts belonging to a user.
type ListAccountsQuery struct {
	UserID string
}

// ---------- Transaction queries ----------

// ListTransactionsQuery fetches the from/to union for an account.
type ListTransactionsQuery struct {
	AccountID string
}

// ListPendingTransactionsQuery fetches the admin moderation queue.
type ListPendingTransactionsQuery struct{}

// ---------- Notification / support queries ----------

type ListNotificationsQuery struct {
	UserID string
}

type ListSupportMessagesQuery struct {
	UserID string
}
