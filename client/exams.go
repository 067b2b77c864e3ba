package client

// ExamProfile est une filière du secondaire haïtien proposée pour la
// génération d'examens.
type ExamProfile struct {
	Key   string
	Label string
}

// ExamProfiles liste les filières du nouveau secondaire.
var ExamProfiles = []ExamProfile{
	{Key: "LLA", Label: "Lettres, Langues et Arts"},
	{Key: "SES", Label: "Sciences Économiques et Sociales"},
	{Key: "SMP", Label: "Sciences Mathématiques et Physique"},
	{Key: "SVT", Label: "Sciences de la Vie et de la Terre"},
}

// ExamSubject est une matière proposée pour la génération d'examens.
type ExamSubject struct {
	Name  string
	Emoji string
}

var ExamSubjects = []ExamSubject{
	{Name: "Maths", Emoji: "📐"},
	{Name: "Physique", Emoji: "⚡"},
	{Name: "Chimie", Emoji: "🧪"},
	{Name: "Biologie", Emoji: "🔬"},
	{Name: "Français", Emoji: "📖"},
	{Name: "Anglais", Emoji: "🔠"},
	{Name: "Espagnol", Emoji: "🗣️"},
	{Name: "Histoire & Géographie", Emoji: "📜"},
	{Name: "Économie", Emoji: "💹"},
	{Name: "Philosophie", Emoji: "💭"},
	{Name: "Informatique", Emoji: "💻"},
	{Name: "Musiques & Art", Emoji: "🎨"},
}
