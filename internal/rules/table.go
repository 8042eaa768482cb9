package rules

// Category is a top-level classification bucket. The value doubles as the
// directory name under the target root.
type Category string

// Subcategory is a finer-grained bucket inside a category. The empty value
// means "no subcategory".
type Subcategory string

const (
	Documents     Category = "documents"
	Images        Category = "images"
	Videos        Category = "videos"
	Audio         Category = "audio"
	Archives      Category = "archives"
	Executables   Category = "executables"
	SourceCode    Category = "source-code"
	DataFiles     Category = "data-files"
	Uncategorized Category = "uncategorized"
)

// SubcategoryRule maps a set of extensions to one subcategory.
type SubcategoryRule struct {
	Name       Subcategory
	Extensions []string
}

// Family is one ordered record of the rule table.
type Family struct {
	Category      Category
	Extensions    []string
	Subcategories []SubcategoryRule
}

// families is evaluated top to bottom. source-code precedes data-files, so
// .json and .xml land in source-code/config.
var families = []Family{
	{
		Category:   Documents,
		Extensions: []string{".doc", ".docx", ".pdf", ".txt", ".rtf", ".xls", ".xlsx", ".ppt", ".pptx", ".odt", ".ods", ".odp"},
		Subcategories: []SubcategoryRule{
			{Name: "word", Extensions: []string{".doc", ".docx"}},
			{Name: "pdf", Extensions: []string{".pdf"}},
			{Name: "text", Extensions: []string{".txt", ".rtf"}},
			{Name: "spreadsheets", Extensions: []string{".xls", ".xlsx", ".ods"}},
			{Name: "presentations", Extensions: []string{".ppt", ".pptx", ".odp"}},
		},
	},
	{
		Category:   Images,
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".svg", ".webp", ".ico"},
		Subcategories: []SubcategoryRule{
			{Name: "JPEG", Extensions: []string{".jpg", ".jpeg"}},
			{Name: "PNG", Extensions: []string{".png"}},
			{Name: "GIF", Extensions: []string{".gif"}},
			{Name: "BMP", Extensions: []string{".bmp"}},
			{Name: "TIFF", Extensions: []string{".tiff"}},
			{Name: "SVG", Extensions: []string{".svg"}},
			{Name: "WEBP", Extensions: []string{".webp"}},
			{Name: "ICO", Extensions: []string{".ico"}},
		},
	},
	{
		Category:   Videos,
		Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"},
		Subcategories: []SubcategoryRule{
			{Name: "MP4", Extensions: []string{".mp4"}},
			{Name: "AVI", Extensions: []string{".avi"}},
			{Name: "MKV", Extensions: []string{".mkv"}},
			{Name: "MOV", Extensions: []string{".mov"}},
			{Name: "other", Extensions: []string{".wmv", ".flv", ".webm", ".m4v"}},
		},
	},
	{
		Category:   Audio,
		Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
		Subcategories: []SubcategoryRule{
			{Name: "MP3", Extensions: []string{".mp3"}},
			{Name: "WAV", Extensions: []string{".wav"}},
			{Name: "FLAC", Extensions: []string{".flac"}},
			{Name: "AAC", Extensions: []string{".aac"}},
			{Name: "other", Extensions: []string{".ogg", ".wma", ".m4a"}},
		},
	},
	{
		Category:   Archives,
		Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
		Subcategories: []SubcategoryRule{
			{Name: "ZIP", Extensions: []string{".zip"}},
			{Name: "RAR", Extensions: []string{".rar"}},
			{Name: "7Z", Extensions: []string{".7z"}},
			{Name: "TAR", Extensions: []string{".tar"}},
			{Name: "other", Extensions: []string{".gz", ".bz2"}},
		},
	},
	{
		Category:   Executables,
		Extensions: []string{".exe", ".msi", ".bat", ".cmd", ".sh"},
		Subcategories: []SubcategoryRule{
			{Name: "programs", Extensions: []string{".exe"}},
			{Name: "installers", Extensions: []string{".msi"}},
			{Name: "batch", Extensions: []string{".bat", ".cmd"}},
			{Name: "shell", Extensions: []string{".sh"}},
		},
	},
	{
		Category:   SourceCode,
		Extensions: []string{".py", ".java", ".cpp", ".c", ".js", ".html", ".css", ".php", ".sql", ".xml", ".json"},
		Subcategories: []SubcategoryRule{
			{Name: "Python", Extensions: []string{".py"}},
			{Name: "Java", Extensions: []string{".java"}},
			{Name: "C-C++", Extensions: []string{".cpp", ".c"}},
			{Name: "frontend", Extensions: []string{".js", ".html", ".css"}},
			{Name: "backend", Extensions: []string{".php", ".sql"}},
			{Name: "config", Extensions: []string{".xml", ".json"}},
		},
	},
	{
		Category:   DataFiles,
		Extensions: []string{".csv", ".dat", ".db", ".sqlite", ".mdb", ".json", ".xml"},
		Subcategories: []SubcategoryRule{
			{Name: "CSV", Extensions: []string{".csv"}},
			{Name: "databases", Extensions: []string{".db", ".sqlite", ".mdb"}},
			{Name: "other", Extensions: []string{".dat", ".json", ".xml"}},
		},
	},
}
