package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"sweaty/internal/domain/entity"
)

// AdminClaim is the custom claim that unlocks admin-only routes.
const AdminClaim = "admin"

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return identityFromClaims(result.UID, result.Claims), nil
}

// SetAdmin grants or revokes the admin claim, keeping any other custom claims.
func (f *FirebaseAuthClient) SetAdmin(ctx context.Context, uid string, admin bool) error {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return err
	}

	claims := make(map[string]interface{}, len(user.CustomClaims)+1)
	for k, v := range user.CustomClaims {
		claims[k] = v
	}
	if admin {
		claims[AdminClaim] = true
	} else {
		delete(claims, AdminClaim)
	}

	return f.client.SetCustomUserClaims(ctx, uid, claims)
}

func identityFromClaims(uid string, claims map[string]interface{}) *entity.Identity {
	admin, _ := claims[AdminClaim].(bool)
	return &entity.Identity{
		UID:   uid,
		Admin: admin,
	}
}
