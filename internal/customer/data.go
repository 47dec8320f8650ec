package customer

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Carol", "Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
	"Cruz", "Edwards", "Collins", "Reyes",
}

// amountBrackets are the four magnitude brackets a request amount is drawn
// from, inclusive on both ends.
var amountBrackets = [4][2]int{
	{25, 200},
	{200, 800},
	{800, 2500},
	{2500, 5000},
}

var transactionKinds = []TransactionKind{Deposit, Withdrawal, WireTransfer}

var forgeryKinds = []ForgeryKind{
	ForgeryWrongName,
	ForgeryMisspelled,
	ForgeryPartialMatch,
	ForgerySimilarName,
	ForgeryShakyHand,
	ForgeryStyleMismatch,
	ForgeryPressureAnomaly,
	ForgeryRushed,
}

var forgeryIndicators = map[ForgeryKind][]string{
	ForgeryWrongName: {
		"signed name does not match the name on file",
		"letterforms bear no resemblance to the card",
	},
	ForgeryMisspelled: {
		"the surname is misspelled mid-signature",
		"a corrected letter is overwritten",
	},
	ForgeryPartialMatch: {
		"only the first name matches the card",
		"the signature trails off unfinished",
	},
	ForgerySimilarName: {
		"the name is close but not identical to the card",
		"one initial differs from the specimen",
	},
	ForgeryShakyHand: {
		"tremor throughout the baseline",
		"hesitation marks at every stroke start",
	},
	ForgeryStyleMismatch: {
		"slant runs opposite to the specimen",
		"loops are printed where the card shows cursive",
	},
	ForgeryPressureAnomaly: {
		"pen pressure is uniform where the card varies",
		"heavy ink pooling at unnatural points",
	},
	ForgeryRushed: {
		"strokes are compressed and overlapping",
		"the final letters collapse into a line",
	},
}
