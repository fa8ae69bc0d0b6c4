package placement

import "math"

// PickNextItem chooses the next unasked item for the session. When forceBand
// is set the caller's band policy wins over the session's own ability
// estimate. Preference order: items exactly at the desired band, then bands
// within one step, then anything left. Candidates are ranked by band distance
// plus a small random jitter so repeated sessions do not replay the same
// sequence.
func (e *Engine) PickNextItem(bank []Item, session *Session, forceBand Band) (Item, bool) {
	desired := forceBand
	if desired == BandNone {
		desired = session.Band()
	}
	desiredIndex := BandIndex(desired)

	unasked := make([]Item, 0, len(bank))
	for _, item := range bank {
		if !session.HasAsked(item.ID) {
			unasked = append(unasked, item)
		}
	}
	if len(unasked) == 0 {
		return Item{}, false
	}

	candidates := filterByBandDistance(unasked, desiredIndex, 0)
	if len(candidates) == 0 {
		candidates = filterByBandDistance(unasked, desiredIndex, 1)
	}
	if len(candidates) == 0 {
		candidates = unasked
	}

	best := candidates[0]
	bestScore := math.MaxFloat64
	for _, item := range candidates {
		score := math.Abs(float64(BandIndex(item.Band)-desiredIndex)) + e.rng.Float64()*0.5
		if score < bestScore {
			best = item
			bestScore = score
		}
	}
	return best, true
}

func filterByBandDistance(items []Item, desiredIndex, maxDistance int) []Item {
	var result []Item
	for _, item := range items {
		distance := BandIndex(item.Band) - desiredIndex
		if distance < 0 {
			distance = -distance
		}
		if distance <= maxDistance {
			result = append(result, item)
		}
	}
	return result
}

// RecordAnswer appends the asked item and answer, then updates ability.
func (e *Engine) RecordAnswer(session *Session, item Item, correct bool) {
	session.Asked = append(session.Asked, item.ID)
	session.Answers = append(session.Answers, correct)
	UpdateAbility(session, item, correct)
}

// UpdateAbility nudges the session's ability after an answer. On a correct
// answer the ability moves toward the item's band, and when the item sits
// exactly at the current ability the move is still +1: answering correctly
// at parity always advances. A wrong answer always moves ability down by 1.
// Ability stays within [-1, 2].
func UpdateAbility(session *Session, item Item, correct bool) {
	itemAbility := BandIndex(item.Band) - 2

	var delta int
	if correct {
		delta = sign(itemAbility - session.Ability)
		if delta == 0 {
			delta = 1
		}
	} else {
		delta = -1
	}

	session.Ability += delta
	if session.Ability < minAbility {
		session.Ability = minAbility
	}
	if session.Ability > maxAbility {
		session.Ability = maxAbility
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
