package model

// ProfileID is the fixed id of the singleton profile row.
const ProfileID = 1

const (
	StartingLevel       = 1
	StartingNextLevelXP = 100
)

type UserProfile struct {
	ID          int
	Level       int
	CurrentXP   int
	NextLevelXP int
}

func DefaultProfile() UserProfile {
	return UserProfile{
		ID:          ProfileID,
		Level:       StartingLevel,
		CurrentXP:   0,
		NextLevelXP: StartingNextLevelXP,
	}
}

// AwardXP adds xp and levels up for every threshold crossed. Each level-up
// grows the threshold by 1.5x, truncated.
func (p UserProfile) AwardXP(xp int) UserProfile {
	if p.NextLevelXP <= 0 {
		p.NextLevelXP = StartingNextLevelXP
	}
	if p.Level < StartingLevel {
		p.Level = StartingLevel
	}
	p.CurrentXP += xp
	if p.CurrentXP < 0 {
		p.CurrentXP = 0
	}
	for p.CurrentXP >= p.NextLevelXP {
		p.CurrentXP -= p.NextLevelXP
		p.Level++
		p.NextLevelXP = p.NextLevelXP * 3 / 2
	}
	return p
}

// Progress is the fraction of the way to the next level, in [0, 1].
func (p UserProfile) Progress() float64 {
	if p.NextLevelXP <= 0 {
		return 0
	}
	pct := float64(p.CurrentXP) / float64(p.NextLevelXP)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// WeeklyStat is the number of completions on one day (YYYY-MM-DD).
type WeeklyStat struct {
	Day   string
	Count int
}
