package bot

import "context"

// Transport is the chat platform seen from the router: send text to a
// user, edit or delete a previously sent message. Chats are private,
// so the chat id is the user id.
type Transport interface {
	Send(ctx context.Context, chatID int64, text string) (messageID int, err error)
	Edit(ctx context.Context, chatID int64, messageID int, text string) error
	Delete(ctx context.Context, chatID int64, messageID int) error
}

// Bot routes inbound traffic: commands by name, free text as either a
// video link or a follow-up question.
type Bot interface {
	HandleCommand(ctx context.Context, userID int64, command string, args []string)
	HandleMessage(ctx context.Context, userID int64, text string)
}
