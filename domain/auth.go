package domain

import "errors"

// Identity error codes shared by the API and its clients.
const (
	AuthCodeUserNotFound      = "auth/user-not-found"
	AuthCodeWrongPassword     = "auth/wrong-password"
	AuthCodeInvalidEmail      = "auth/invalid-email"
	AuthCodeEmailAlreadyInUse = "auth/email-already-in-use"
	AuthCodeWeakPassword      = "auth/weak-password"
	AuthCodeInvalidCredential = "auth/invalid-credential"
	DefaultAuthFailureMessage = "Authentication failed. Please try again."
)

var authMessages = map[string]string{
	AuthCodeUserNotFound:      "No account found with this email. Please register first.",
	AuthCodeWrongPassword:     "Incorrect password. Please try again.",
	AuthCodeInvalidEmail:      "Invalid email address format.",
	AuthCodeEmailAlreadyInUse: "An account with this email already exists.",
	AuthCodeWeakPassword:      "Password should be at least 6 characters long.",
	AuthCodeInvalidCredential: "Invalid email or password. Please check your credentials.",
}

// AuthErrorMessage returns the user-facing text for an identity error code.
func AuthErrorMessage(code string) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return DefaultAuthFailureMessage
}

// AuthErrorCode classifies an authentication error. It returns "" for
// errors that are not identity errors.
func AuthErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUserNotFound):
		return AuthCodeUserNotFound
	case errors.Is(err, ErrWrongPassword):
		return AuthCodeWrongPassword
	case errors.Is(err, ErrInvalidEmail):
		return AuthCodeInvalidEmail
	case errors.Is(err, ErrEmailAlreadyExists):
		return AuthCodeEmailAlreadyInUse
	case errors.Is(err, ErrWeakPassword):
		return AuthCodeWeakPassword
	case errors.Is(err, ErrInvalidCredentials):
		return AuthCodeInvalidCredential
	default:
		return ""
	}
}
