package domain

// DefaultDailyGoal is the number of reviews a learner aims for per day.
const DefaultDailyGoal = 50

// StudyCard is a card as presented to a particular user.
type StudyCard struct {
	Card             Card
	Deck             DeckSummary
	ProficiencyLevel int
}

// SessionProgress reports how many reviews the user logged today.
type SessionProgress struct {
	CompletedToday int
	GoalToday      int
}

// NextCard is the result of one session step. Card is nil when there is
// nothing to study.
type NextCard struct {
	Card     *StudyCard
	Progress SessionProgress
}
