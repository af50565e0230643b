package models

import (
	"database/sql"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"golang.org/x/crypto/bcrypt"
)

// JWT configuration constants
const (
	// TokenExpirationHours defines how long admin sessions remain valid
	TokenExpirationHours = 24

	// TokenIssuer identifies the application that issued the token
	TokenIssuer = "plume"

	// JWTSecretEnvVar is the environment variable containing the signing key
	JWTSecretEnvVar = "PLUME_JWT_SECRET"

	// MinSecretLength is the minimum acceptable length for the JWT secret
	MinSecretLength = 32
)

// jwtSecret holds the signing key loaded from environment.
// Set during InitJWT and used for all token operations.
var jwtSecret []byte

// SessionClaims extends JWT standard claims with the admin username
type SessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// InitJWT loads the JWT signing key from environment.
// Must be called at startup before any token operations.
// Falls back to a fixed key in development if not set.
func InitJWT() error {
	secret := os.Getenv(JWTSecretEnvVar)

	if secret == "" {
		logger.Info("JWT secret not set, using development key", "env", JWTSecretEnvVar)
		secret = "development-only-secret-do-not-use-in-production"
	}

	if len(secret) < MinSecretLength {
		return serr.New("JWT secret must be at least 32 characters")
	}

	jwtSecret = []byte(secret)
	return nil
}

// GenerateSessionToken creates a signed JWT for an authenticated admin
func GenerateSessionToken(username string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", serr.New("JWT not initialized - call InitJWT first")
	}

	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour * TokenExpirationHours)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", serr.Wrap(err, "failed to sign session token")
	}

	return tokenString, nil
}

// ValidateSessionToken parses and validates a session token.
// Returns the claims if valid, or an error if the token is
// expired, malformed, or has an invalid signature.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	if len(jwtSecret) == 0 {
		return nil, serr.New("JWT not initialized - call InitJWT first")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, serr.Wrap(err, "failed to parse session token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, serr.New("invalid session claims")
	}

	return claims, nil
}

// Admin is an account allowed into the /admin area
type Admin struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	LastLoginAt  sql.NullTime `json:"last_login_at"`
}

// Password hashing configuration.
// Cost of 12 keeps login times reasonable (~250ms).
const bcryptCost = 12

// HashPassword creates a bcrypt hash of the plaintext password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", serr.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against its hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return serr.New("password must be at least 8 characters")
	}
	return nil
}

// GetAdminByUsername fetches one admin account.
// Returns (nil, nil) when the username is unknown.
func GetAdminByUsername(username string) (*Admin, error) {
	d, err := getDB()
	if err != nil {
		return nil, err
	}

	var a Admin
	err = d.QueryRow(
		"SELECT id, username, password_hash, created_at, last_login_at FROM admins WHERE username = ?",
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.LastLoginAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to get admin "+username)
	}

	return &a, nil
}

// EnsureAdmin creates the admin account at startup if it does not
// already exist. An existing account is left untouched so a changed
// config password never silently rewrites credentials.
func EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}

	existing, err := GetAdminByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	d, err := getDB()
	if err != nil {
		return err
	}

	_, err = d.Exec(
		"INSERT INTO admins (username, password_hash, created_at) VALUES (?, ?, ?)",
		username, hash, time.Now(),
	)
	if err != nil {
		return serr.Wrap(err, "failed to create admin "+username)
	}

	logger.Info("Admin account created", "username", username)
	return nil
}

// AuthenticateAdmin checks credentials and returns a session token.
// The same error is returned for a wrong username and a wrong
// password so login failures do not reveal which part was bad.
func AuthenticateAdmin(username, password string) (string, error) {
	admin, err := GetAdminByUsername(username)
	if err != nil {
		return "", err
	}
	if admin == nil || !CheckPassword(password, admin.PasswordHash) {
		return "", serr.New("invalid username or password")
	}

	d, err := getDB()
	if err != nil {
		return "", err
	}
	if _, err := d.Exec("UPDATE admins SET last_login_at = ? WHERE id = ?", time.Now(), admin.ID); err != nil {
		logger.LogErr(err, "failed to record admin login", "username", username)
	}

	return GenerateSessionToken(admin.Username)
}
