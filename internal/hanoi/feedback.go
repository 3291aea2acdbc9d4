package hanoi

const (
	msgTrivial    = "Good job debugging, now play the game -_-'"
	msgUnexpected = "Hmmmmmm.... that's uhh.. unexpected"
)

// WinFeedback returns the win screen remark for a puzzle size.
// More poles make a puzzle easier, so the praise is scaled down for them.
func WinFeedback(poles, disks int) string {
	switch {
	case poles == 3:
		return feedbackThreePoles(disks)
	case poles == 4 || poles == 5:
		switch {
		case disks >= 1 && disks <= 2:
			return msgTrivial
		case disks >= 3 && disks <= 5:
			return "Well done! I guess..."
		case disks >= 6 && disks <= 10:
			return "Is it actually hard?"
		case disks >= 11 && disks <= 13:
			return "This probably requires some thinking"
		}
		return msgUnexpected
	case poles >= 6:
		return msgTrivial
	}
	return "Wait, that's illegal!"
}

func feedbackThreePoles(disks int) string {
	switch disks {
	case 1:
		return msgTrivial
	case 2:
		return "Wow! That was easy huhh...?"
	case 3:
		return "Well done!"
	case 4:
		return "Good job!"
	case 5:
		return "Smart!"
	case 6:
		return "Very Smart!"
	case 7:
		return "Amazing!"
	case 8:
		return "You are crazy!!"
	case 9, 10:
		return "Wow! That's impressive :o"
	case 11:
		return "You. Are. A. Legend"
	case 12:
		return "How in the.....???"
	}
	return msgUnexpected
}
