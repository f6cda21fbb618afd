package client

import (
	"context"
	"errors"
	"sync"

	"github.com/vibank/account-system/internal/core/domain"
)

// Navigation targets after a successful login.
const (
	RouteCustomerDashboard = "/customer-dashboard"
	RouteAgentDashboard    = "/agent-dashboard"
)

const (
	fallbackLoginMsg = "Login failed. Please check your credentials."
	customersOnlyMsg = "This login is for customers only."
)

// ErrSubmissionInFlight is returned when Submit is called while a
// previous submission has not completed. Only one submission may be in
// flight at a time.
var ErrSubmissionInFlight = errors.New("a login submission is already in flight")

// ErrNotCustomer is returned when the credentials verify but the
// account's role does not match this form's audience. No session is
// established in that case.
var ErrNotCustomer = errors.New("account is not a customer")

// Navigator abstracts the routing facility the form drives after a
// successful login.
type Navigator interface {
	NavigateTo(route string)
}

// LoginForm is the customer login controller: it submits credentials to
// the account service and maps the outcome into loading/error state,
// session establishment and navigation. The form itself (markup,
// styling) is out of scope; this is its logic.
type LoginForm struct {
	api     AccountAPI
	session *Session
	nav     Navigator

	mu      sync.Mutex
	loading bool
	errMsg  string
}

func NewLoginForm(api AccountAPI, session *Session, nav Navigator) *LoginForm {
	return &LoginForm{api: api, session: session, nav: nav}
}

// Loading reports whether a submission is in flight. The submit
// control stays disabled while this is true.
func (f *LoginForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// ErrorMessage returns the message currently displayed on the form, or
// empty when there is none.
func (f *LoginForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submit runs one login attempt: enter loading state, clear the prior
// error, call the service, and react to the outcome. Whatever happens,
// the form is left re-enterable (loading cleared).
func (f *LoginForm) Submit(ctx context.Context, email, password string) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	f.loading = true
	f.errMsg = ""
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	user, err := f.api.Login(ctx, email, password)
	if err != nil {
		// Surface the server-supplied message verbatim when present.
		msg := fallbackLoginMsg
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Msg != "" {
			msg = apiErr.Msg
		}
		f.setError(msg)
		return err
	}

	if user.Role != domain.RoleCustomer {
		// Client-side authorization error, distinct from a backend
		// error: valid credentials, wrong audience. No session.
		f.setError(customersOnlyMsg)
		return ErrNotCustomer
	}

	f.session.Establish(user)
	f.nav.NavigateTo(RouteCustomerDashboard)
	return nil
}

func (f *LoginForm) setError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = msg
}
