package models

type ContactStatus string
type UserRole string
type UploadMethod string

const (
	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusCompleted  ContactStatus = "COMPLETED"
	ContactStatusArchived   ContactStatus = "ARCHIVED"

	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"

	UploadMethodServer UploadMethod = "server"
	UploadMethodDirect UploadMethod = "direct"
)

// ValidContactStatuses lists every accepted contact workflow status.
var ValidContactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusInProgress,
	ContactStatusCompleted,
	ContactStatusArchived,
}
