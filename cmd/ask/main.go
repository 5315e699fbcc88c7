package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"expert-assistant/cmd"
	"expert-assistant/pkg/client"

	"github.com/caarlos0/env/v11"
	"github.com/schollz/progressbar/v3"
)

// An empty Role lets the server fall back to its default role.
type Config struct {
	Server string `env:"ASSISTANT_URL" envDefault:"http://localhost:8501"`
	Role   string `env:"ASSISTANT_ROLE"`
}

func loadConfig(server, role string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if server != "" {
		cfg.Server = server
	}
	if role != "" {
		cfg.Role = role
	}
	return cfg, nil
}

func main() {
	envFile := flag.String("env", "", "path to load env from")
	server := flag.String("server", "", "assistant server url (overrides ASSISTANT_URL)")
	role := flag.String("role", "", "expert role (overrides ASSISTANT_ROLE)")
	listRoles := flag.Bool("roles", false, "list the available roles and exit")
	flag.Parse()

	cmd.LoadEnvFile(*envFile)

	cfg, err := loadConfig(*server, *role)
	if err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	c := client.New(cfg.Server)
	ctx := context.Background()

	if *listRoles {
		roles, err := c.Roles(ctx)
		if err != nil {
			log.Fatalf("error listing roles: %v", err)
		}
		for _, name := range roles.Roles {
			marker := " "
			if name == roles.Default {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return
	}

	input, err := readInput(flag.Args(), os.Stdin)
	if err != nil {
		log.Fatalf("error reading input: %v", err)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "入力テキストを入力してください。")
		os.Exit(2)
	}

	answer, err := ask(ctx, c, cfg.Role, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LLM 呼び出しでエラーが発生しました: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("### 回答")
	fmt.Println(answer)
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func ask(ctx context.Context, c *client.Client, role, input string) (string, error) {
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("LLMに問い合わせ中..."),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				spinner.Add(1) //nolint:errcheck
			}
		}
	}()

	answer, err := c.Ask(ctx, role, input)
	close(done)
	spinner.Finish() //nolint:errcheck

	return answer, err
}
