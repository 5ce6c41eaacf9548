package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/suparena/appdata"
	"github.com/suparena/appdata/registry"
	"github.com/suparena/appdata/scope"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	rootFlag       = flag.String("root", ".", "Base directory for the application data root")
	userFlag       = flag.String("user", "", "User identity (empty selects the app-wide scope)")
	serializerFlag = flag.String("serializer", "json", "Serializer to use (json, yaml, gob)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: appdata [flags] <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  get <key>             Print a setting value\n")
	fmt.Fprintf(os.Stderr, "  set <key> <value>     Store a setting value\n")
	fmt.Fprintf(os.Stderr, "  delete <key>          Remove a setting\n")
	fmt.Fprintf(os.Stderr, "  list                  List setting keys\n")
	fmt.Fprintf(os.Stderr, "  clear                 Remove all settings in the scope\n")
	fmt.Fprintf(os.Stderr, "  read-file <path>      Print a stored file's contents\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag || *vFlag {
		info := appdata.GetVersionInfo()
		fmt.Printf("AppData CLI version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	ser, err := registry.GetSerializer(*serializerFlag)
	if err != nil {
		return err
	}

	resolver, err := scope.NewLocalResolver(afero.NewOsFs(), *rootFlag)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var helper *appdata.Helper
	if *userFlag == "" {
		helper, err = appdata.ForCurrentScope(resolver, appdata.WithSerializer(ser))
	} else {
		helper, err = appdata.ForUserScope(ctx, resolver, *userFlag, appdata.WithSerializer(ser))
	}
	if err != nil {
		return err
	}

	switch command {
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("get requires exactly one key")
		}
		value, ok, err := appdata.TryRead[string](helper, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("key %q not found", args[0])
		}
		fmt.Println(value)
		return nil

	case "set":
		if len(args) != 2 {
			return fmt.Errorf("set requires a key and a value")
		}
		return appdata.Write(helper, args[0], args[1])

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete requires exactly one key")
		}
		removed, err := helper.Delete(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("key %q not found", args[0])
		}
		return nil

	case "list":
		keys, err := helper.Settings().Keys()
		if err != nil {
			return err
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil

	case "clear":
		return helper.Clear()

	case "read-file":
		if len(args) != 1 {
			return fmt.Errorf("read-file requires exactly one path")
		}
		text, err := helper.Files().ReadText(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
