package user

import (
	"context"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/api"
)

const emailDomain = "example.com"

func New(client *api.Client) core.UserService {
	return &service{client: client}
}

type service struct {
	client *api.Client
}

func (s *service) List(ctx context.Context) ([]core.UserSummary, error) {
	var users []core.UserSummary
	if err := s.client.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []core.UserSummary{}
	}

	return users, nil
}

func (s *service) Create(ctx context.Context, name, email string) (*core.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.NewValidationError("name", "name is required")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		email = DefaultEmail(name)
	} else if !govalidator.IsEmail(email) {
		return nil, core.NewValidationError("email", "invalid email address")
	}

	body := map[string]string{
		"name":  name,
		"email": email,
	}

	var user core.User
	if err := s.client.Post(ctx, "/users", body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *service) Find(ctx context.Context, id core.ID) (*core.User, error) {
	if id.IsZero() {
		return nil, core.NewValidationError("user_id", "user id is required")
	}

	var user core.User
	if err := s.client.Get(ctx, "/users/"+url.PathEscape(id.String()), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// DefaultEmail derives a placeholder address from a display name:
// "Ada Lovelace" becomes "ada.lovelace@example.com".
func DefaultEmail(name string) string {
	local := strings.Join(strings.Fields(strings.ToLower(name)), ".")
	return local + "@" + emailDomain
}
