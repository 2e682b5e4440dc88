package league

var positiveAdjectives = []string{
	"awesome", "excellent", "first-rate", "great", "groovy", "prime",
	"superb", "wonderful",
}

var pennantVerbs = []string{
	"battle for", "try to claim", "try to take", "rally for",
	"stake your claim for", "fight for",
}

var callsByDay = [7][]string{
	{ // Monday
		"Come get your quiz on and start your week off right!",
		"Come start your week off in style, with some great food and drinks, fun music, and FREE TRIVIA!",
		"Get your friends together and come kick off your week with a free game of Trivia Time Live!",
		"Just because the weekend is over doesn't mean the fun has to stop! Get your teams together and come join the party!",
		"Start your week off in style with a FREE Trivia Time Live party!",
		"Start your week off right with friends, food, and TRIVIA!",
	},
	{ // Tuesday
		"Come enjoy a fun-filled Tuesday with lots of cold craft beers and free trivia!",
		"Don't spend another boring Tuesday night at home! Get your friends together and come play!",
		"Get your best teams together and come represent your favorite Trivia Time Live venues!",
		"Spice up your Tuesday with Trivia Time Live! It's time to get your quiz on!",
		"Take your pick of any of these awesome venues and come play some FREE TRIVIA TIME LIVE!",
		"Trivia Tuesday is in full swing! Assemble your teams and we'll make it a party!",
		"Tuesdays, as with other days that end in \"y\" are the best days to play trivia. Don't miss out!",
		"You couldn't ask for a better way to spend a Tuesday night!",
	},
	{ // Wednesday
		"Come out and kick your hump day into high gear with some free trivia fun!",
		"Get your best teams together and come join the hump day trivia party!",
		"Get your friends together and come spice up your hump day with some FREE TRIVIA!",
		"Get your teams together and come enjoy these awesome hump day trivia venues! We'll see you there!",
		"Let us at Trivia Time Live be that little extra something that helps you get over the hump of the week!",
		"Make hump day the best day of your week with your friends, some good food and drink, and Trivia Time Live!",
		"Take your pick of any of these awesome hump day venues and we'll see you there!",
	},
	{ // Thursday
		"Come enjoy a fun-filled Thursday with lots of cold craft beers and free trivia!",
		"Don't spend another boring Thursday night at home! Get your teams together and come join the party!",
		"It's gonna be a rockin' good Thursday that you don't want to miss. Bring your friends, grab your tables, and we'll take care of the rest.",
		"Whether you're thirsty for some Thursday night trivia, or just hungry for victory, we've got the funk and we're giving it up at Trivia Time Live!",
	},
	{ // Friday
		"Come wrap up your week with good friends, food & drink, music, and TRIVIA!",
		"Don't spend another boring Friday night at home! Get your teams together and come join the party!",
		"Get your friends together and come spend a fun filled Friday night playing some FREE Trivia Time Live!",
		"Kick off your weekend with great drinks, good friends, and FREE trivia!",
		"Kick start your weekend with some cold drinks, good music and FREE TRIVIA!",
		"TGIF and let's go play some TTL! Come have fun with us! See ya' there!",
		"There's no better way to start a weekend than with good drinks, fun music, and FREE TRIVIA!",
		"Whether you're looking for a fun night out with friends or a cool craft beer, you gotta get down on Friday with Trivia Time Live!",
	},
	{ // Saturday
		"Don't spend another boring Saturday night at home! Get your teams together and come join the party!",
		"The trivia weekend is in full swing and we're positively pumped for tonight! Get on our level!",
	},
	{ // Sunday
		"Just because the weekend is almost over doesn't mean you can't have a good time! Gather your friends and we'll see you at 7pm!",
		"Just because the weekend is winding down doesn't mean the fun has to! Get your friends together for some great food and drinks and a FREE trivia party!",
		"Sunday doesn't have to be the end of your weekend when it can be the start of your trivia week!",
	},
}

var callsByVenueCount = map[int][]string{
	2: {
		"No matter what venue you choose, you're sure to have a blast! Gather your teams and we'll see you there!",
		"Take your pick of either of these awesome spots and come get the party started with Trivia Time Live!",
		"Take your pick of either of these awesome venues and come get the party started with Trivia Time Live!",
	},
	3: {
		"Get a team together and come have some fun! Game starts at 7pm!",
		"Lots of fun games to pick from tonight! Gather your teams and come join the party!",
		"Lots of good food and drinks, great music and free trivia fun to be had tonight! Get your teams together and don't miss out!",
		"No matter what venue you choose, you're sure to have a blast! Gather your teams and we'll see you there!",
		"No matter which place you choose, you're sure to have a blast! Gather your teams and we'll see you there!",
		"Plenty of super fun games to pick from tonight! Get your friends together and we'll see you there!",
		"Take your pick of any of these awesome venues and come play some FREE TRIVIA TIME LIVE!",
	},
}

var pennantCalls = []string{
	"It's gonna be a PENNANT game tonight so grab your team, put on your best thinking caps, and come join the fray. Will it stay or will it go? It's up to you!",
	"It's an all out battle for the PENNANT tonight so make sure to bring your A-game.",
	"Get your best teams together and see if you have what it takes to steal the pennant!",
	"The pennant is waiting! Go get it!",
	"We can't wait to see what happens at that pennant game tonight!",
	"Don't miss out on an exciting pennant game!",
}

var generalCalls = []string{
	"Gather your forces and come join the trivia battle!",
	"Gather your friends and come join the fun!",
	"Get all your friends together and come join the party!",
	"Get your best teams together and come represent your favorite Trivia Time Live venues!",
	"Get everybody together and we'll see you there!",
	"Get your friends together and come enjoy a great night with Trivia Time Live!",
	"Get your friends together and don't miss all the fun!",
	"Get your teams together and we'll see you there!",
	"Get your teams together for a fun, FREE night of Trivia Time Live!",
	"Good food, great drinks, free trivia! Get your teams together and come join the fun!",
	"Make today your lucky day with a fun night of friends, music, and Trivia Time Live! Trivia is life, the rest is just details.",
	"Sharpen your minds by reading the clue, but then even things out by drinking a brew. Grab your friends and we'll see you there!",
}

// postNames rewrites venue names so Facebook tagging finds the right page.
var postNames = map[string]func(string) string{
	"ENV": ampersandToAnd,
	"BBG": ampersandToAnd,
	"PIG": truncateTo(17),
	"SBH": func(string) string { return "Best Western Silverdal" },
	"NEW": func(string) string { return "Newwayvapors Lounge and Restaurant" },
	"SCB": truncateTo(21),
}
