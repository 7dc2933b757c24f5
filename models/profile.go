package models

// Profile defines the structure for pet profiles
type Profile struct {
	ID             string   `json:"id"`                       // Owning user's id; key is "profile:<id>"
	Email          string   `json:"email"`                    // Account email
	PetName        string   `json:"petName"`                  // Display name of the pet
	Species        string   `json:"species"`                  // e.g. Dog, Cat
	Breed          string   `json:"breed"`                    // Breed within the species
	Age            int      `json:"age"`                      // Age in years
	ProfilePicture string   `json:"profilePicture,omitempty"` // Media reference, storage is external
	AboutMe        string   `json:"aboutMe"`                  // Free-text bio
	FavoriteToys   []string `json:"favoriteToys"`             // Ordered list
	FavoriteFoods  []string `json:"favoriteFoods"`            // Ordered list
	Quirks         []string `json:"quirks"`                   // Ordered list
	Badges         []Badge  `json:"badges"`                   // Admin-awarded, duplicates allowed
	IsAdmin        bool     `json:"isAdmin"`                  // Grants access to moderation endpoints
	CreatedAt      string   `json:"createdAt"`                // RFC3339
	Followers      []string `json:"followers"`                // User ids, duplicate-free, never contains own id
	Following      []string `json:"following"`                // User ids, duplicate-free, never contains own id
	PostCount      int      `json:"postCount"`                // Cached counter, bumped on post creation
}

// Badge is a value object embedded in Profile.Badges.
type Badge struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	AwardedAt string `json:"awardedAt"`
}

// NewProfile returns a profile with all collection fields initialized so they
// serialize as empty arrays rather than null.
func NewProfile(userID, email, petName, species, breed string, age int, createdAt string) Profile {
	return Profile{
		ID:            userID,
		Email:         email,
		PetName:       petName,
		Species:       species,
		Breed:         breed,
		Age:           age,
		AboutMe:       "",
		FavoriteToys:  []string{},
		FavoriteFoods: []string{},
		Quirks:        []string{},
		Badges:        []Badge{},
		IsAdmin:       false,
		CreatedAt:     createdAt,
		Followers:     []string{},
		Following:     []string{},
		PostCount:     0,
	}
}
