package hangman

const Header = "Tree and Hangman:"

var stages = [][]string{
	1: {
		"  🌳",
		"      | ",
		"      O ",
	},
	2: {
		"  🌳",
		"      | ",
		"      O ",
		"      | ",
	},
	3: {
		"  🌳",
		"      | ",
		"      O ",
		"     /| ",
	},
	4: {
		"  🌳",
		"      | ",
		"      O ",
		"     /|\\ ",
	},
	5: {
		"  🌳",
		"      | ",
		"      O ",
		"     /|\\ ",
		"     / ",
	},
	6: {
		"  🌳",
		"      | ",
		"      O ",
		"     /|\\ ",
		"     / \\ ",
	},
}

// RenderArt - returns the figure for the given number of wrong guesses, or nil outside 1..6.
func RenderArt(stage int) []string {
	if stage < 1 || stage >= len(stages) {
		return nil
	}

	lines := make([]string, len(stages[stage]))
	copy(lines, stages[stage])

	return lines
}
