package bans

// Active returns the authoritative active ban for a user, or nil when the
// user is not banned. When several records are active at once the most
// recently created one wins for reason/expiry display.
func Active(list []Ban) *Ban {
	var winner *Ban
	for i := range list {
		b := &list[i]
		if !b.IsActive {
			continue
		}
		if winner == nil || b.CreatedAt.After(winner.CreatedAt) {
			winner = b
		}
	}
	return winner
}

// IsBanned reports whether at least one ban record is active.
func IsBanned(list []Ban) bool {
	return Active(list) != nil
}
