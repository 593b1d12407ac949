package models

// Contact is one entry of the directory. Name, Email, Phone, Address and
// Department are required; every other attribute is optional.
type Contact struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	PersonalEmail string `bson:"personalemail" json:"personalemail"`
	Phone         string `bson:"phone" json:"phone"`
	Year          string `bson:"year" json:"year"`
	Address       string `bson:"address" json:"address"`
	Domain        string `bson:"domain" json:"domain"`
	Department    string `bson:"department" json:"department"`
	GitHub        string `bson:"github" json:"github"`
	LinkedIn      string `bson:"linkedin" json:"linkedin"`
	LeetCode      string `bson:"leetcode" json:"leetcode"`
	HackerRank    string `bson:"hackerrank" json:"hackerrank"`
}
