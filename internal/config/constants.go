package config

import "time"

const (
	// Paystack webhook
	SignatureHeader    = "X-Paystack-Signature"
	EventChargeSuccess = "charge.success"

	// Metadata custom field names
	FieldFullName = "full_name"
	FieldChatID   = "chat_id"

	// Invite links expire shortly after issuance; the join request itself
	// still needs admin approval.
	InviteExpiry = 5 * time.Minute

	// Provider timestamp layout and the human-readable form used by the
	// payment listing.
	PaidAtLayout        = "2006-01-02 15:04:05"
	PaidAtDisplayLayout = "Jan 02, 2006 03:04 PM"

	// HTTP
	ShutdownTimeout = 10 * time.Second
)

// Commands is the whitelist of recognized bot commands and their
// descriptions, used by /help and command routing.
var Commands = map[string]string{
	"start":  "Start the bot",
	"help":   "Get help information",
	"status": "Check bot status",
	"info":   "Get information about the bot",
}

// AdminCommands are recognized only for users in the admin allow-list.
var AdminCommands = map[string]string{
	"broadcast": "Send a message to all users",
}
