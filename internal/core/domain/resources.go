package domain

// Game is a practice game listed under "games".
type Game struct {
	GameID      int    `json:"game_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Goal is an achievement listed under "goals".
type Goal struct {
	GoalID      int    `json:"goal_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Section groups lessons and is listed under "sections".
type Section struct {
	SectionID     int    `json:"section_id"`
	Name          string `json:"name"`
	RequiredLevel int    `json:"required_level"`
}

// Lesson is listed under "lessons".
type Lesson struct {
	LessonID      int    `json:"lesson_id"`
	Name          string `json:"name"`
	Content       string `json:"content" table:"wide"`
	RequiredLevel int    `json:"required_level"`
}

// Unlocked reports whether an account at level may open the lesson.
func (l Lesson) Unlocked(level int) bool {
	return level >= l.RequiredLevel
}

// Unlocked reports whether an account at level may open the section.
func (s Section) Unlocked(level int) bool {
	return level >= s.RequiredLevel
}

// LeaderboardEntry is one row under "leaderboard".
type LeaderboardEntry struct {
	Username string `json:"username"`
	Level    int    `json:"level"`
	Points   int    `json:"points"`
}
