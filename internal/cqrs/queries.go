package cqrs

// ---------- User queries ----------

// GetUserQuery fetches a single user profile by id.
type GetUserQuery struct {
	UserID int
}

// ---------- Transaction queries ----------

// GetTransactionQuery fetches a single transaction by id.
type GetTransactionQuery struct {
	TransactionID int
}

// ListTransactionsQuery fetches all transactions owned by a user,
// newest first.
type ListTransactionsQuery struct {
	UserID int
}

// ---------- Contact queries ----------

// ListContactsQuery fetches all contacts owned by a user.
type ListContactsQuery struct {
	UserID int
}

// ListFrequentContactsQuery fetches the contacts flagged for prioritized
// display in the send-money flow.
type ListFrequentContactsQuery struct {
	UserID int
}

// ---------- Conversation queries ----------

// ListConversationsQuery fetches a user's assistant conversations,
// newest first.
type ListConversationsQuery struct {
	UserID int
}
