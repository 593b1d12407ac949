package services

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/repository"
	"github.com/harentsoaR/contact-directory/internal/utils"
)

// Client-facing messages.
const (
	MsgMissingFields         = "Missing required fields."
	MsgMissingCredentials    = "Missing phone or password."
	MsgPasswordTooLong       = "Password must be at most 72 bytes."
	MsgInvalidCredentials    = "Invalid phone or password"
	MsgUserExists            = "User already exists"
	MsgContactNotFound       = "Contact not found"
	MsgAddContactFailed      = "Failed to add contact"
	MsgUpdateContactFailed   = "Failed to update contact"
	MsgListContactsFailed    = "Failed to retrieve contacts"
	MsgDeleteContactFailed   = "Error deleting contact"
	MsgInternalServerFailure = "Internal server error"
)

// Services groups every service the handlers depend on.
type Services struct {
	Contact ContactService
	Auth    AuthService
}

// New wires the services on top of store.
func New(store repository.Store, hasher *utils.PasswordHasher, tokens *utils.TokenIssuer, logger *zap.Logger) *Services {
	validate := validator.New()
	return &Services{
		Contact: NewContactService(store.Contacts(), validate, logger),
		Auth:    NewAuthService(store.Users(), hasher, tokens, validate, logger),
	}
}
