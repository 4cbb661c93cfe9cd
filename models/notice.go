package models

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

func (l NoticeLevel) String() string {
	switch l {
	case NoticeSuccess:
		return "success"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a short message shown in the status line.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notify delivers notices to the user interface. It must not block.
type Notify func(Notice)
