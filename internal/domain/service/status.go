package service

// StatusNotifier shows transient single-line messages to the operator. Each
// message supersedes the previous one; none of them are persisted output.
type StatusNotifier interface {
	Push(title, message string)
}
