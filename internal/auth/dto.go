package auth

import (
	"github.com/eshop-labs/storefront-api/internal/cart"
	"github.com/eshop-labs/storefront-api/internal/users"
	"github.com/eshop-labs/storefront-api/internal/wishlist"
)

// RequestCodeInput carries the phone number asking for a one-time code.
type RequestCodeInput struct {
	Phone string `json:"phone" validate:"required,e164"`
}

// RequestCodeResponse acknowledges a dispatched code.
type RequestCodeResponse struct {
	Phone     string `json:"phone"`
	ExpiresIn int    `json:"expires_in"`
}

// VerifyCodeInput carries the phone number and the code it received.
type VerifyCodeInput struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code" validate:"required,numeric"`
}

// FederatedSignInInput carries the identity token minted by the upstream
// provider's sign-in widget.
type FederatedSignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SessionResponse is returned by every successful sign-in. The cart and
// wishlist ride along so the storefront reflects the new session without a
// second round trip, and the flat ID lists let it mark product cards
// without scanning the item arrays.
type SessionResponse struct {
	AccessToken     string               `json:"access_token"`
	RefreshToken    string               `json:"refresh_token"`
	User            *users.UserDTO       `json:"user"`
	Cart            cart.CartDTO         `json:"cart"`
	Wishlist        wishlist.WishlistDTO `json:"wishlist"`
	CartProductIDs  []int                `json:"cart_product_ids"`
	LikedProductIDs []int                `json:"liked_product_ids"`
}

// RefreshInput carries the expired access token and its refresh token.
type RefreshInput struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
