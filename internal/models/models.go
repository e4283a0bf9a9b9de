package models

import (
	"time"
)

type User struct {
	ID                     int64     `json:"id" db:"id"`
	Username               string    `json:"username" db:"username"`
	FirstName              string    `json:"firstName" db:"first_name"`
	LastName               string    `json:"lastName" db:"last_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	JoinedDate             time.Time `json:"joinedDate" db:"joined_date"`
	IsAdmin                bool      `json:"isAdmin" db:"is_admin"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

// DisplayName is the author attribution stored on posts.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

type Post struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Subtitle string `json:"subtitle" db:"subtitle"`
	Date     string `json:"date" db:"date"`
	Body     string `json:"body" db:"body"`
	Author   string `json:"author" db:"author"`
	ImgURL   string `json:"imgUrl" db:"img_url"`
	AuthorID int64  `json:"authorId" db:"author_id"`
}

// Comment carries the commenter's display name from a join with users.
type Comment struct {
	ID            int64  `json:"id" db:"id"`
	Text          string `json:"text" db:"text"`
	AuthorID      int64  `json:"authorId" db:"author_id"`
	PostID        int64  `json:"postId" db:"post_id"`
	CommenterName string `json:"commenterName" db:"commenter_name"`
}

type FollowEdge struct {
	ID         int64     `json:"id" db:"id"`
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FollowedID int64     `json:"followedId" db:"followed_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type ProfileInfo struct {
	ID                int64  `json:"id" db:"id"`
	Skill             string `json:"skill" db:"skill"`
	Experience        string `json:"experience" db:"experience"`
	Education         string `json:"education" db:"education"`
	Occupation        string `json:"occupation" db:"occupation"`
	Location          string `json:"location" db:"location"`
	Profession        string `json:"profession" db:"profession"`
	Website           string `json:"website" db:"website"`
	LinkedIn          string `json:"linkedin" db:"linkedin"`
	GitHub            string `json:"github" db:"github"`
	Twitter           string `json:"twitter" db:"twitter"`
	Facebook          string `json:"facebook" db:"facebook"`
	Instagram         string `json:"instagram" db:"instagram"`
	Bio               string `json:"bio" db:"bio"`
	ProfileImage      string `json:"profileImage" db:"profile_image"`
	ProfileVisibility bool   `json:"profileVisibility" db:"profile_visibility"`
	UserID            int64  `json:"userId" db:"user_id"`
}

// DefaultProfileInfo is what GetProfile returns when the user has never
// edited their profile. The row itself is created lazily.
func DefaultProfileInfo(userID int64) *ProfileInfo {
	return &ProfileInfo{
		ProfileImage:      "default.jpg",
		ProfileVisibility: true,
		UserID:            userID,
	}
}
