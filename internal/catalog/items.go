package catalog

// RareBadge marks limited items in listings
const RareBadge = " **RARE ⭐**"

var apparel = []Entry{
	{ID: "baseball cap", Label: "🧢 Baseball Cap", Price: 100},
	{ID: "wide-brimmed hat", Label: "👒 Wide-brimmed Hat", Price: 150},
	{ID: "gloves", Label: "🧤 Gloves", Price: 80},
	{ID: "scarf", Label: "🧣 Scarf", Price: 120},
	{ID: "sunglasses", Label: "👓 Sunglasses", Price: 90},
	{ID: "t-shirt", Label: "👚 T-shirt", Price: 200},
	{ID: "dress", Label: "👗 Dress", Price: 250},
	{ID: "jeans", Label: "👖 Jeans", Price: 220},
	{ID: "tie", Label: "👔 Tie", Price: 70},
	{ID: "hoodie", Label: "👕 Hoodie", Price: 180},
	{ID: "jacket", Label: "🧥 Jacket", Price: 300},
	{ID: "top hat", Label: "🎩 Top Hat", Price: 350},
	{ID: "boots", Label: "👢 Boots", Price: 160},
	{ID: "high heels", Label: "👠 High Heels", Price: 180},
	{ID: "flats", Label: "🥿 Flats", Price: 130},
	{ID: "sandals", Label: "👡 Sandals", Price: 100},
	{ID: "sneakers", Label: "👟 Sneakers", Price: 150},
	{ID: "beanie", Label: "🧢 Beanie", Price: 110},
	{ID: "handbag", Label: "👜 Handbag", Price: 210},
	{ID: "backpack", Label: "🎒 Backpack", Price: 140},
	{ID: "shopping bag", Label: "🛍️ Shopping Bag", Price: 90},
	{ID: "ring", Label: "💍 Ring", Price: 400},
	{ID: "necklace", Label: "📿 Necklace", Price: 180},
	{ID: "bracelet", Label: "📿 Bracelet", Price: 110},
	{ID: "tank top", Label: "🎽 Tank Top", Price: 130},
	{ID: "teddy bear", Label: "🧸 Teddy Bear", Price: 70},
	{ID: "bikini", Label: "👙 Bikini", Price: 120},
	{ID: "londons game worn devils jersey", Label: "😈 Londons Game Worn Devils Jersey", Price: 1000, Rare: true},
	{ID: "emilys game worn devils jersey", Label: "😈 Emilys Game Worn Devils Jersey", Price: 1000, Rare: true},
	{ID: "isabellas monkey costume", Label: "🐒 Isabellas Monkey Costume", Price: 1000, Rare: true},
	{ID: "brandons leather jacket", Label: "🧥 Brandons Leather Jacket", Price: 1000, Rare: true},
}

var pets = []Entry{
	{ID: "dog", Label: "🐶 Dog", Price: 500},
	{ID: "cat", Label: "🐱 Cat", Price: 400},
	{ID: "parrot", Label: "🦜 Parrot", Price: 350},
	{ID: "hamster", Label: "🐹 Hamster", Price: 150},
	{ID: "rabbit", Label: "🐰 Rabbit", Price: 200},
	{ID: "turtle", Label: "🐢 Turtle", Price: 250},
	{ID: "fish", Label: "🐟 Fish", Price: 100},
	{ID: "iguana", Label: "🦎 Iguana", Price: 600},
	{ID: "ferret", Label: "🦡 Ferret", Price: 450},
	{ID: "guinea pig", Label: "🐹 Guinea Pig", Price: 300},
	{ID: "chicken", Label: "🐔 Chicken", Price: 180},
	{ID: "duck", Label: "🦆 Duck", Price: 220},
	{ID: "gecko", Label: "🦎 Gecko", Price: 350},
	{ID: "tarantula", Label: "🕷 Tarantula", Price: 500},
	{ID: "chinchilla", Label: "🐾 Chinchilla", Price: 550},
	{ID: "mini pig", Label: "🐖 Mini Pig", Price: 650},
	{ID: "horse", Label: "🐎 Horse", Price: 1200},
	{ID: "alpaca", Label: "🦙 Alpaca", Price: 800},
	{ID: "emilys snake", Label: "🐍 Emilys Snake", Price: 2000, Rare: true},
	{ID: "frank", Label: "🐱 Frank", Price: 2000, Rare: true},
	{ID: "jackson", Label: "🐶 Jackson", Price: 2000, Rare: true},
}
