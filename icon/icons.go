package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Progress
	Match
	Catalog
	History
	Search
	Config
	Sample
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "[ok]",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "[x]",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "[!]",
		kaomoji: "(｀Д´)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・;)",
		squares: "🟦",
	},
	Match: {
		emoji:   "🎯",
		nerd:    "",
		plain:   "=",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟪",
	},
	Catalog: {
		emoji:   "📚",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟫",
	},
	History: {
		emoji:   "🕰️",
		nerd:    "",
		plain:   "~",
		kaomoji: "(´･ω･`)",
		squares: "⬜",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(¬‿¬)",
		squares: "🟧",
	},
	Config: {
		emoji:   "⚙️",
		nerd:    "",
		plain:   "*",
		kaomoji: "(￣ー￣)",
		squares: "⬛",
	},
	Sample: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "o",
		kaomoji: "ヽ(•‿•)ノ",
		squares: "🔳",
	},
}
