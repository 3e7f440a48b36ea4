package models

// User struct matches the document in MongoDB
type User struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Email       string `bson:"email" json:"email"`
	Name        string `bson:"name" json:"name"`
	Password    string `bson:"password" json:"-"` // bcrypt hash
	Role        string `bson:"role" json:"role"`  // "admin", "dispatcher", "driver"
	PersonnelID string `bson:"personnelID,omitempty" json:"personnelID,omitempty"`
	Status      string `bson:"status" json:"status"`
}
