// Package palette holds the colour tables trees draw their bark and foliage
// from. Entries are CSS colour tokens ("rgb(r,g,b)"), which surfaces either
// pass through verbatim or convert with Parse.
package palette

// Browns and grays colour trunks and branches.
var (
	Browns = []string{
		"rgb(139, 69, 19)",
		"rgb(160,82,45)",
		"rgb(184,134,11)",
		"rgb(188,143,143)",
		"rgb(205,133,63)",
		"rgb(210,180,140)",
		"rgb(222,184,135)",
		"rgb(244,164,96)",
		"rgb(245,222,179)",
	}

	Grays = []string{
		"rgb(128,128,128)",
		"rgb(119,136,153)",
		"rgb(169,169,169)",
		"rgb(192,192,192)",
	}
)

// Greens, ornamental and flowering colour the leaves.
var (
	Greens = []string{
		"rgb(0,100,0)",
		"rgb(0,128,0)",
		"rgb(0,250,154)",
		"rgb(102,205,170)",
		"rgb(107,142,35)",
		"rgb(143,188,143)",
		"rgb(154,205,50)",
		"rgb(173,255,47)",
		"rgb(34,139,34)",
		"rgb(46,139,87)",
		"rgb(50,205,50)",
		"rgb(60,179,113)",
		"rgb(85,107,47)",
	}

	Ornamental = []string{
		"rgb(128,0,0)",
		"rgb(139,0,0)",
		"rgb(255,140,0)",
		"rgb(255,99,71)",
	}

	Flowering = []string{
		"rgb(128,0,128)",
		"rgb(147,112,219)",
		"rgb(186,85,211)",
		"rgb(199,21,133)",
		"rgb(218,112,214)",
		"rgb(221,160,221)",
	}
)

// Human readable colour names attached to a tree.
const (
	NameBrown      = "Brown"
	NameGreen      = "Green"
	NameOrnamental = "Ornamental"
	NameFlowering  = "Flowering"
)

// GrayNames are the interchangeable labels for gray bark.
var GrayNames = []string{"Silver", "Gray", "Grey"}
