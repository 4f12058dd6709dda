package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alkasm1/pixlock/cmd"
)

const defaultImagesDir = "images"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "set":
		runSet(ctx, os.Args[2:])
	case "unlock":
		runUnlock(ctx, os.Args[2:])
	case "rm":
		runRm(ctx, os.Args[2:])
	case "status":
		runStatus(ctx, os.Args[2:])
	case "images":
		runImages(ctx, os.Args[2:])
	case "completion":
		runCompletion(ctx, os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// imagesDir resolves the catalogue directory: flag, then environment,
// then the default.
func imagesDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv("PIXLOCK_IMAGES"); dir != "" {
		return dir
	}
	return defaultImagesDir
}

// commonFlags registers the flags every store-touching command shares.
func commonFlags(fs *flag.FlagSet) (images, store *string, verbose *bool) {
	images = fs.String("images", "", "Image catalogue directory (default \"images\", or PIXLOCK_IMAGES)")
	store = fs.String("store", "", "Vault file path (default: OS keyring)")
	verbose = fs.Bool("v", false, "Verbose logging")
	return images, store, verbose
}

func runSet(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	imageID := fs.String("image", "", "Bundled image identifier (see 'pixlock images')")
	filePath := fs.String("file", "", "Image file from outside the catalogue")
	images, store, verbose := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cfg := cmd.Config{ImagesDir: imagesDir(*images), StorePath: *store, Verbose: *verbose}
	cmd.Set(ctx, cfg, *imageID, *filePath)
}

func runUnlock(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("unlock", flag.ExitOnError)
	imageID := fs.String("image", "", "Bundled image identifier (see 'pixlock images')")
	filePath := fs.String("file", "", "Image file from outside the catalogue")
	images, store, verbose := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cfg := cmd.Config{ImagesDir: imagesDir(*images), StorePath: *store, Verbose: *verbose}
	cmd.Unlock(ctx, cfg, *imageID, *filePath)
}

func runRm(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	images, store, verbose := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cfg := cmd.Config{ImagesDir: imagesDir(*images), StorePath: *store, Verbose: *verbose}
	cmd.Remove(ctx, cfg)
}

func runStatus(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	images, store, verbose := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cfg := cmd.Config{ImagesDir: imagesDir(*images), StorePath: *store, Verbose: *verbose}
	cmd.Status(ctx, cfg)
}

func runImages(_ context.Context, args []string) {
	fs := flag.NewFlagSet("images", flag.ExitOnError)
	images := fs.String("images", "", "Image catalogue directory (default \"images\", or PIXLOCK_IMAGES)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Images(cmd.Config{ImagesDir: imagesDir(*images)})
}

func runCompletion(_ context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pixlock completion <bash|zsh|fish>")
		os.Exit(1)
	}
	cmd.Completion(args[0])
}

func printUsage() {
	fmt.Println("pixlock - Visual lock: an image plus a password is the key")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pixlock <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  set         Derive and store the lock secret")
	fmt.Println("  unlock      Verify image and password against the stored secret")
	fmt.Println("  rm          Remove the stored secret")
	fmt.Println("  status      Show key presence and backend details")
	fmt.Println("  images      List the bundled image catalogue")
	fmt.Println("  completion  Generate shell completions")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pixlock set -image sunset.png      # Set the key from a bundled image")
	fmt.Println("  pixlock set -file ~/photos/cat.jpg # Set the key from your own photo")
	fmt.Println("  pixlock unlock -image sunset.png   # Verify; exit code 0 on match")
	fmt.Println("  pixlock rm                         # Remove the key")
	fmt.Println()
	fmt.Println("Use 'pixlock help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "set":
		fmt.Println("pixlock set (-image <id> | -file <path>) [-images <dir>] [-store <path>] [-v]")
		fmt.Println()
		fmt.Println("Derives the lock secret from the chosen image and a password and")
		fmt.Println("stores it, replacing any previous key. The password is read from")
		fmt.Println("PIXLOCK_PASSWORD or prompted twice without echo.")
		fmt.Println()
		fmt.Println("Exactly one image selection is required:")
		fmt.Println("  -image <id>     A bundled image (see 'pixlock images')")
		fmt.Println("  -file <path>    Any image file, e.g. from your photo library")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -images <dir>   Image catalogue directory (default \"images\")")
		fmt.Println("  -store <path>   Store in a vault file instead of the OS keyring")
		fmt.Println("  -v              Verbose logging")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  pixlock set -image sunset.png")
		fmt.Println("  pixlock set -file ~/photos/cat.jpg -store ~/.pixlock")
	case "unlock":
		fmt.Println("pixlock unlock (-image <id> | -file <path>) [-images <dir>] [-store <path>] [-v]")
		fmt.Println()
		fmt.Println("Verifies the chosen image and a prompted password against the")
		fmt.Println("stored secret. Prints 'Unlocked' and exits 0 on a match; a wrong")
		fmt.Println("image or password exits 1. Verification never modifies the key.")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  pixlock unlock -image sunset.png")
		fmt.Println("  pixlock unlock -file ~/photos/cat.jpg && ./run-protected-thing")
	case "rm":
		fmt.Println("pixlock rm [-store <path>] [-v]")
		fmt.Println()
		fmt.Println("Removes the stored secret. Succeeds even when no key is set.")
		fmt.Println("Does not require a password.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  pixlock rm")
	case "status":
		fmt.Println("pixlock status [-store <path>] [-v]")
		fmt.Println()
		fmt.Println("Shows whether a key is set and which backend holds it. For a")
		fmt.Println("vault file, also shows its path, version and timestamps.")
		fmt.Println("Does not require a password and never prints the secret.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  pixlock status")
	case "images":
		fmt.Println("pixlock images [-images <dir>]")
		fmt.Println()
		fmt.Println("Lists the bundled image catalogue in order. These identifiers")
		fmt.Println("are what -image accepts. The catalogue directory defaults to")
		fmt.Println("'images', overridable with -images or PIXLOCK_IMAGES.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  pixlock images")
	case "completion":
		fmt.Println("pixlock completion <bash|zsh|fish>")
		fmt.Println()
		fmt.Println("Outputs shell completion script for the specified shell.")
		fmt.Println()
		fmt.Println("Setup:")
		fmt.Println("  # Bash - add to ~/.bashrc")
		fmt.Println("  eval \"$(pixlock completion bash)\"")
		fmt.Println()
		fmt.Println("  # Zsh - add to ~/.zshrc")
		fmt.Println("  eval \"$(pixlock completion zsh)\"")
		fmt.Println()
		fmt.Println("  # Fish - add to ~/.config/fish/config.fish")
		fmt.Println("  pixlock completion fish | source")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
