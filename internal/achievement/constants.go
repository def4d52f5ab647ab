package achievement

// Error messages
const (
	ErrMsgListDefinitions = "failed to list achievement definitions"
)
