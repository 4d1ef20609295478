package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/usergate/internal/client/client"
	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

// Messages shown by the edit views.
const (
	MsgLoadUserFailed = "Failed to load user data"
	MsgUpdateFailed   = "Failed to update user"
	MsgUpdated        = "Profile updated successfully!"
)

// Directory is the remote user directory as the views consume it.
type Directory struct {
	client client.Client
	log    logging.Logger
}

func NewDirectory(c client.Client, log logging.Logger) *Directory {
	return &Directory{client: c, log: log}
}

// Page fetches one page. Failures are logged here; callers keep whatever
// they showed before.
func (d *Directory) Page(ctx context.Context, page int) (*models.UserPage, error) {
	p, err := d.client.ListUsers(ctx, page)
	if err != nil {
		d.log.Error(ctx, "failed to load users", "page", page, "error", err)
		return nil, err
	}
	return p, nil
}

func (d *Directory) User(ctx context.Context, id int) (*models.User, error) {
	u, err := d.client.GetUser(ctx, id)
	if err != nil {
		d.log.Warn(ctx, "failed to load user", "id", id, "error", err)
		return nil, err
	}
	return u, nil
}

// Update validates the form and sends it. Validation failures wrap
// common.ErrInvalidInput and never reach the remote API.
func (d *Directory) Update(ctx context.Context, id int, u models.UserUpdate) error {
	u = normalizeUpdate(u)
	if err := ValidateUpdate(u); err != nil {
		return err
	}
	if err := d.client.UpdateUser(ctx, id, u); err != nil {
		d.log.Warn(ctx, "failed to update user", "id", id, "error", err)
		return err
	}
	d.log.Info(ctx, "user updated", "id", id)
	return nil
}

// Delete reports whether the remote API confirmed the deletion. A failed
// delete is logged and otherwise ignored.
func (d *Directory) Delete(ctx context.Context, id int) bool {
	if err := d.client.DeleteUser(ctx, id); err != nil {
		d.log.Warn(ctx, "delete ignored", "id", id, "error", err)
		return false
	}
	d.log.Info(ctx, "user deleted", "id", id)
	return true
}

// Message maps an error from Directory to the text an edit view shows.
func Message(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, common.ErrUpdateFailed):
		return MsgUpdateFailed
	case errors.Is(err, common.ErrLoadFailed):
		return MsgLoadUserFailed
	default:
		return MsgUpdateFailed
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidationError lists the rejected form fields by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range []string{"first_name", "last_name", "email"} {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return common.ErrInvalidInput }

// ValidateUpdate checks the edit form before it is sent.
func ValidateUpdate(u models.UserUpdate) error {
	err := getValidator().Struct(u)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		name, label := fieldLabel(fe.Field())
		switch fe.Tag() {
		case "required":
			out.Fields[name] = label + " is required"
		case "email":
			out.Fields[name] = label + " must be a valid email address"
		default:
			out.Fields[name] = label + " is invalid"
		}
	}
	return out
}

func fieldLabel(structField string) (string, string) {
	switch structField {
	case "FirstName":
		return "first_name", "First name"
	case "LastName":
		return "last_name", "Last name"
	case "Email":
		return "email", "Email"
	default:
		return strings.ToLower(structField), structField
	}
}

func normalizeUpdate(u models.UserUpdate) models.UserUpdate {
	return models.UserUpdate{
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
		Email:     strings.TrimSpace(u.Email),
	}
}
