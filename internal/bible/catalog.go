package bible

// Book is one entry of the fixed 66-book canon. Seq is 1-based;
// books 1-39 are the Old Testament, 40-66 the New Testament.
type Book struct {
	Code     string `json:"code"`
	Seq      int    `json:"seq"`
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

var catalog = []Book{
	{"Gen", 1, "Genesis", 50},
	{"Exo", 2, "Exodus", 40},
	{"Lev", 3, "Leviticus", 27},
	{"Num", 4, "Numbers", 36},
	{"Deu", 5, "Deuteronomy", 34},
	{"Jos", 6, "Joshua", 24},
	{"Jdg", 7, "Judges", 21},
	{"Rut", 8, "Ruth", 4},
	{"1Sa", 9, "1 Samuel", 31},
	{"2Sa", 10, "2 Samuel", 24},
	{"1Ki", 11, "1 Kings", 22},
	{"2Ki", 12, "2 Kings", 25},
	{"1Ch", 13, "1 Chronicles", 29},
	{"2Ch", 14, "2 Chronicles", 36},
	{"Ezr", 15, "Ezra", 10},
	{"Neh", 16, "Nehemiah", 13},
	{"Est", 17, "Esther", 10},
	{"Job", 18, "Job", 42},
	{"Psa", 19, "Psalms", 150},
	{"Pro", 20, "Proverbs", 31},
	{"Ecc", 21, "Ecclesiastes", 12},
	{"Sng", 22, "Song of Songs", 8},
	{"Isa", 23, "Isaiah", 66},
	{"Jer", 24, "Jeremiah", 52},
	{"Lam", 25, "Lamentations", 5},
	{"Ezk", 26, "Ezekiel", 48},
	{"Dan", 27, "Daniel", 12},
	{"Hos", 28, "Hosea", 14},
	{"Jol", 29, "Joel", 3},
	{"Amo", 30, "Amos", 9},
	{"Oba", 31, "Obadiah", 1},
	{"Jon", 32, "Jonah", 4},
	{"Mic", 33, "Micah", 7},
	{"Nam", 34, "Nahum", 3},
	{"Hab", 35, "Habakkuk", 3},
	{"Zep", 36, "Zephaniah", 3},
	{"Hag", 37, "Haggai", 2},
	{"Zec", 38, "Zechariah", 14},
	{"Mal", 39, "Malachi", 4},
	{"Mat", 40, "Matthew", 28},
	{"Mrk", 41, "Mark", 16},
	{"Luk", 42, "Luke", 24},
	{"Jhn", 43, "John", 21},
	{"Act", 44, "Acts", 28},
	{"Rom", 45, "Romans", 16},
	{"1Co", 46, "1 Corinthians", 16},
	{"2Co", 47, "2 Corinthians", 13},
	{"Gal", 48, "Galatians", 6},
	{"Eph", 49, "Ephesians", 6},
	{"Php", 50, "Philippians", 4},
	{"Col", 51, "Colossians", 4},
	{"1Th", 52, "1 Thessalonians", 5},
	{"2Th", 53, "2 Thessalonians", 3},
	{"1Ti", 54, "1 Timothy", 6},
	{"2Ti", 55, "2 Timothy", 4},
	{"Tit", 56, "Titus", 3},
	{"Phm", 57, "Philemon", 1},
	{"Heb", 58, "Hebrews", 13},
	{"Jas", 59, "James", 5},
	{"1Pe", 60, "1 Peter", 5},
	{"2Pe", 61, "2 Peter", 3},
	{"1Jn", 62, "1 John", 5},
	{"2Jn", 63, "2 John", 1},
	{"3Jn", 64, "3 John", 1},
	{"Jud", 65, "Jude", 1},
	{"Rev", 66, "Revelation", 22},
}

var indexByCode = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, b := range catalog {
		m[b.Code] = i
	}
	return m
}()

// BookCount is the size of the canon.
const BookCount = 66

// Books returns the full catalog in canonical order.
func Books() []Book {
	return catalog
}

// IndexOf returns the 0-based catalog index of code, or -1 if unknown.
func IndexOf(code string) int {
	if i, ok := indexByCode[code]; ok {
		return i
	}
	return -1
}

// ChapterCount returns the canonical chapter count for code, 0 if unknown.
func ChapterCount(code string) int {
	i := IndexOf(code)
	if i < 0 {
		return 0
	}
	return catalog[i].Chapters
}
