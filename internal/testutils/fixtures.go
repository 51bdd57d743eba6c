package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
)

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *userModel.User {
	uniqueID := uuid.New().String()

	// Default password hash
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	testUser := &userModel.User{
		Username:     fmt.Sprintf("test_user_%s", uniqueID),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: string(passwordHash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         userModel.RoleStudent,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*userModel.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *userModel.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *userModel.User) {
		u.Email = email
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *userModel.User) {
		u.Role = role
	}
}

// WithPassword sets the password (will be hashed)
func WithPassword(password string) UserOption {
	return func(u *userModel.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		u.PasswordHash = string(hash)
	}
}

// CreateTestWorkspace creates a workspace owned by the given user,
// including the owner's accepted membership
func CreateTestWorkspace(db *gorm.DB, ownerID uint) *wsModel.Workspace {
	ws := &wsModel.Workspace{
		Name:        fmt.Sprintf("test_workspace_%s", uuid.New().String()),
		Description: "test workspace",
		CreatedBy:   ownerID,
	}
	if err := db.Create(ws).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test workspace: %v", err))
	}

	now := time.Now()
	m := &wsModel.Membership{
		UserID:      ownerID,
		WorkspaceID: ws.ID,
		Role:        wsModel.RoleOwner,
		Status:      wsModel.StatusAccepted,
		JoinedAt:    &now,
	}
	if err := db.Create(m).Error; err != nil {
		panic(fmt.Sprintf("Failed to create owner membership: %v", err))
	}

	return ws
}

// CreateTestMembership creates a membership row with the given role and status
func CreateTestMembership(db *gorm.DB, userID, workspaceID uint, role, status string) *wsModel.Membership {
	m := &wsModel.Membership{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        role,
		Status:      status,
	}
	if status == wsModel.StatusAccepted {
		now := time.Now()
		m.JoinedAt = &now
	}
	if err := db.Create(m).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test membership: %v", err))
	}
	return m
}
