// horizon-cli est le client terminal de Horizon : connexion, discussion avec
// le tuteur, quiz et examens, depuis la ligne de commande.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rochardEloi/genai-front-end/client"
	"github.com/rochardEloi/genai-front-end/models"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erreur:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "horizon",
		Short: "Tuteur scolaire Horizon en ligne de commande",
	}
	root.PersistentFlags().String("server", "http://localhost:8080", "Adresse du serveur Horizon")

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		verifyCmd(),
		logoutCmd(),
		whoamiCmd(),
		subjectsCmd(),
		chatCmd(),
		historyCmd(),
		quizCmd(),
		examsCmd(),
		progressCmd(),
	)
	return root
}

// viperForCmd lie les drapeaux de la commande, l'environnement HORIZON_* et
// un éventuel fichier de configuration.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.Root().PersistentFlags())

	v.SetEnvPrefix("HORIZON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("horizon")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/horizon")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Avertissement: fichier de configuration illisible:", err)
		}
	}
	return v
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".horizon-session"
	}
	return filepath.Join(home, ".config", "horizon", "session")
}

// newAPI construit le client et restaure la session persistée, s'il y en a une.
func newAPI(v *viper.Viper) *client.API {
	api := client.NewAPI(v.GetString("server"))
	if data, err := os.ReadFile(sessionPath()); err == nil {
		api.SetCookieHeader(strings.TrimSpace(string(data)))
	}
	return api
}

func saveSession(api *client.API) {
	path := sessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		fmt.Fprintln(os.Stderr, "Avertissement: session non enregistrée:", err)
		return
	}
	if err := os.WriteFile(path, []byte(api.CookieHeader()), 0o600); err != nil {
		fmt.Fprintln(os.Stderr, "Avertissement: session non enregistrée:", err)
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Se connecter à Horizon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			password, err := readPassword("Mot de passe: ")
			if err != nil {
				return err
			}

			user, err := api.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			saveSession(api)
			if user != nil {
				fmt.Println("Bienvenue,", user.Name)
			} else {
				fmt.Println("Connexion réussie")
			}
			return nil
		},
	}
	return cmd
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <prénom> <nom> <email>",
		Short: "Créer un compte",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			password, err := readPassword("Mot de passe: ")
			if err != nil {
				return err
			}

			_, err = api.Register(cmd.Context(), client.RegisterInput{
				Firstname: args[0],
				Lastname:  args[1],
				Email:     args[2],
				Password:  password,
			})
			if err != nil {
				return err
			}
			saveSession(api)
			fmt.Println("Compte créé. Vérifie ta boîte mail puis lance: horizon verify <code>")
			return nil
		},
	}
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <code>",
		Short: "Vérifier son adresse email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			if _, err := api.Verify(cmd.Context(), args[0]); err != nil {
				return err
			}
			saveSession(api)
			fmt.Println("Email vérifié, ton compte est prêt")
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Se déconnecter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.Remove(sessionPath()); err != nil && !os.IsNotExist(err) {
				return err
			}
			fmt.Println("Déconnecté")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Afficher l'utilisateur connecté",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			session := client.NewSession(newAPI(v))

			if err := session.Hydrate(cmd.Context(), ""); err != nil {
				return fmt.Errorf("session expirée, reconnecte-toi avec: horizon login")
			}
			user := session.User()
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}

func subjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "Lister les matières disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			subjects, err := api.Subjects(cmd.Context())
			if err != nil {
				return err
			}
			for _, option := range client.BuildSubjectOptions(subjects) {
				fmt.Printf("%s  %s (%s)\n     %s\n", option.Emoji, option.Label, option.Key, option.Hint)
			}
			return nil
		},
	}
}

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Discuter avec le tuteur",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			chat := client.NewChat(api, v.GetString("book"))
			if id := v.GetString("resume"); id != "" {
				if err := chat.LoadExisting(cmd.Context(), id); err != nil {
					return err
				}
				for _, m := range chat.Messages() {
					printMessage(m)
				}
			}

			fmt.Println("Écris ton message ('/quit' pour sortir):")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "/quit" {
					break
				}

				reveal, err := chat.Send(cmd.Context(), line)
				if err != nil {
					fmt.Fprintln(os.Stderr, "Erreur:", err)
					continue
				}
				if reveal == nil {
					continue
				}

				fmt.Print("Tuteur: ")
				shown := 0
				for prefix := range reveal.Start() {
					fmt.Print(prefix[shown:])
					shown = len(prefix)
				}
				fmt.Println()
			}
			saveSession(api)
			if id := chat.ConversationID(); id != "" {
				fmt.Println("Conversation:", id)
			}
			return scanner.Err()
		},
	}
	cmd.Flags().String("book", "", "Identifiant de la matière (selected_book_id)")
	cmd.Flags().String("resume", "", "Reprendre une conversation existante")
	return cmd
}

func printMessage(m client.ChatMessage) {
	role := "Tuteur"
	if m.Role == "user" {
		role = "Toi"
	}
	fmt.Printf("%s: %s\n", role, m.Content)
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Lister ses conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			conversations, err := api.History(cmd.Context())
			if err != nil {
				return err
			}
			if len(conversations) == 0 {
				fmt.Println("Aucune conversation pour le moment")
				return nil
			}
			for _, conv := range conversations {
				title := conv.Title
				if title == "" {
					title = "(sans titre)"
				}
				fmt.Printf("%s  %s\n", conv.ID, title)
			}
			return nil
		},
	}
}

func quizCmd() *cobra.Command {
	quiz := &cobra.Command{
		Use:   "quiz",
		Short: "Créer et passer des quiz",
	}
	quiz.AddCommand(quizCreateCmd(), quizTakeCmd(), quizListCmd())
	return quiz
}

func quizCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <book-id>",
		Short: "Générer un quiz sur une matière",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			id, err := api.CreateFlashTest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println("Quiz créé:", id)
			fmt.Println("Lance-le avec: horizon quiz take", id)
			return nil
		},
	}
}

func quizListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lister ses quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			tests, err := api.FlashTests(cmd.Context())
			if err != nil {
				return err
			}
			for _, test := range tests {
				status := "à faire"
				if test.TotalUserPoints > 0 {
					status = fmt.Sprintf("%.1f/%.1f", test.TotalUserPoints, test.TotalPoints)
				}
				fmt.Printf("%s  %-40s %s\n", test.ID, test.Title, status)
			}
			return nil
		},
	}
}

func quizTakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take <quiz-id>",
		Short: "Passer un quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			quiz := client.NewQuiz(api)
			if err := quiz.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			if quiz.State() == client.QuizAlreadyDone {
				percent := quiz.Percent()
				fmt.Printf("Quiz déjà fait: %d%% — %s\n", percent, client.ScoreMessage(percent))
				return nil
			}

			test := quiz.Test()
			fmt.Println(test.Title)
			scanner := bufio.NewScanner(os.Stdin)
			for i, question := range test.Questions {
				quiz.GoTo(i)
				fmt.Printf("\nQuestion %d/%d (%.0f pt): %s\n", i+1, len(test.Questions), question.Points, question.Text)
				for j, option := range question.Options {
					fmt.Printf("  %d) %s\n", j+1, option)
				}
				if question.Type == models.QuestionMultipleChoice {
					fmt.Println("Plusieurs réponses possibles, séparées par des espaces")
				}

				for !quiz.Answered(i) {
					fmt.Print("Réponse: ")
					if !scanner.Scan() {
						return scanner.Err()
					}
					for _, field := range strings.Fields(scanner.Text()) {
						choice, err := strconv.Atoi(field)
						if err != nil || choice < 1 || choice > len(question.Options) {
							continue
						}
						quiz.Select(choice - 1)
					}
				}
			}

			if err := quiz.Submit(cmd.Context()); err != nil {
				return err
			}
			percent := quiz.Percent()
			fmt.Printf("\nScore: %d%% — %s\n", percent, client.ScoreMessage(percent))
			for i, result := range quiz.Results() {
				fmt.Printf("  Question %d: %.1f/%.1f\n", i+1, result.Points, result.Max)
			}
			return nil
		},
	}
}

func examsCmd() *cobra.Command {
	exams := &cobra.Command{
		Use:   "exams",
		Short: "Générer et retrouver des examens",
	}
	exams.AddCommand(examsCreateCmd(), examsListCmd(), examsProfilesCmd())
	return exams
}

func examsProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Lister les filières et matières d'examen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Println("Filières:")
			for _, profile := range client.ExamProfiles {
				fmt.Printf("  %s  %s\n", profile.Key, profile.Label)
			}
			fmt.Println("Matières:")
			for _, subject := range client.ExamSubjects {
				fmt.Printf("  %s %s\n", subject.Emoji, subject.Name)
			}
			return nil
		},
	}
}

func examsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <matière> <filière>",
		Short: "Générer un examen type bac",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			exam, err := api.CreateExam(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			name := slug.Make(exam.Title)
			if name == "" {
				name = slug.Make(args[0] + " " + args[1])
			}
			path := name + ".md"
			if err := os.WriteFile(path, []byte(exam.Exam), 0o644); err != nil {
				return err
			}
			fmt.Println("Examen enregistré:", path)
			return nil
		},
	}
	return cmd
}

func examsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lister ses examens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			exams, err := api.MyExams(cmd.Context())
			if err != nil {
				return err
			}
			if len(exams) == 0 {
				fmt.Println("Aucun examen pour le moment")
				return nil
			}
			for _, exam := range exams {
				fmt.Printf("%s  %s\n", exam.ID, exam.Title)
			}
			return nil
		},
	}
}

func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Afficher sa progression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viperForCmd(cmd)
			api := newAPI(v)

			tests, err := api.FlashTests(cmd.Context())
			if err != nil {
				return err
			}
			p := client.BuildProgress(tests)
			fmt.Printf("Quiz terminés: %d/%d\n", p.Completed, p.Total)
			if p.Completed > 0 {
				fmt.Printf("Moyenne: %d%% — %s\n", p.AveragePercent, client.ScoreMessage(p.AveragePercent))
				fmt.Printf("Points: %.1f/%.1f\n", p.EarnedPoints, p.PossiblePoints)
				fmt.Printf("Meilleur quiz: %s (%d%%)\n", p.BestTitle, p.BestPercent)
			}
			return nil
		},
	}
}
