package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"aleo-broadcaster/auth"
	"aleo-broadcaster/broadcaster"
	"aleo-broadcaster/config"
	"aleo-broadcaster/rpc"
	"aleo-broadcaster/util/log"
)

var (
	programName string
	funcName    string
	authRaw     string
	debugMode   bool
)

func init() {
	flag.StringVar(&programName, "program_name", "", "Aleo program name")
	flag.StringVar(&funcName, "func_name", "", "Function name to call")
	flag.StringVar(&authRaw, "auth_raw", "", "Path to raw auth file")
	flag.BoolVar(&debugMode, "debug", false, "enable debug output")
}

func main() {
	flag.Parse()

	if err := checkFlags(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	config.Load(false)
	if debugMode {
		config.SetDebugMode(true)
	}

	log.SetPath(config.GetLogPath())
	log.SetPrefix(config.GetLabel())
	log.Init(config.DebugMode())

	payload, err := auth.NormalizeFile(authRaw, config.GetMaxAuthFileSize())
	if err != nil {
		log.Errorf("Error normalizing auth_raw: %v", err)
		os.Exit(1)
	}

	client := rpc.NewClient(
		config.GetRPC(),
		config.GetExplorer(),
		config.GetNetwork(),
		rpc.WithTimeout(config.GetRequestTimeout()),
	)

	b := broadcaster.New(client,
		broadcaster.WithPollDelay(config.GetPollDelay()),
		broadcaster.WithPollAttempts(config.GetPollAttempts()),
	)

	if _, err := b.Broadcast(context.Background(), programName, funcName, payload); err != nil {
		log.Fatal(err)
	}
}

func checkFlags() error {
	missing := []string{}
	required := []struct {
		name  string
		value string
	}{
		{"program_name", programName},
		{"func_name", funcName},
		{"auth_raw", authRaw},
	}

	for _, arg := range required {
		if arg.value == "" {
			missing = append(missing, "--"+arg.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required arguments: %v", missing)
	}

	return nil
}
