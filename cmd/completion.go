package cmd

import (
	"fmt"
	"os"
)

// Completion outputs shell completion scripts
func Completion(shell string) {
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported: bash, zsh, fish\n", shell)
		os.Exit(1)
	}
}

const bashCompletion = `_pixlock() {
    local cur prev words cword
    _init_completion || return

    local commands="set unlock rm status images help completion"

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
        return
    fi

    local cmd="${words[1]}"
    case "$cmd" in
        set|unlock)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "-image -file -images -store -v" -- "$cur"))
            elif [[ "$prev" == "-image" ]]; then
                local ids
                ids=$(pixlock images 2>/dev/null)
                COMPREPLY=($(compgen -W "$ids" -- "$cur"))
            elif [[ "$prev" == "-file" || "$prev" == "-images" || "$prev" == "-store" ]]; then
                _filedir
            fi
            ;;
        rm|status)
            COMPREPLY=($(compgen -W "-store -v" -- "$cur"))
            ;;
        images)
            COMPREPLY=($(compgen -W "-images" -- "$cur"))
            ;;
        help)
            COMPREPLY=($(compgen -W "$commands" -- "$cur"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            ;;
    esac
}

complete -F _pixlock pixlock
`

const zshCompletion = `#compdef pixlock

_pixlock() {
    local -a commands
    commands=(
        'set:Derive and store the lock secret'
        'unlock:Verify image and password against the stored secret'
        'rm:Remove the stored secret'
        'status:Show key presence and backend details'
        'images:List the bundled image catalogue'
        'help:Show help for a command'
        'completion:Generate shell completions'
    )

    _arguments -C \
        '1: :->command' \
        '*: :->args'

    case "$state" in
        command)
            _describe -t commands 'pixlock commands' commands
            ;;
        args)
            case "${words[2]}" in
                set|unlock)
                    _arguments \
                        '-image[Bundled image identifier]:image:_pixlock_images' \
                        '-file[Image file from outside the catalogue]:file:_files' \
                        '-images[Catalogue directory]:directory:_directories' \
                        '-store[Vault file instead of the OS keyring]:file:_files' \
                        '-v[Verbose logging]'
                    ;;
                rm|status)
                    _arguments \
                        '-store[Vault file instead of the OS keyring]:file:_files' \
                        '-v[Verbose logging]'
                    ;;
                images)
                    _arguments '-images[Catalogue directory]:directory:_directories'
                    ;;
                help)
                    _describe -t commands 'pixlock commands' commands
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_pixlock_images() {
    local -a ids
    ids=(${(f)"$(pixlock images 2>/dev/null)"})
    _describe -t ids 'catalogue images' ids
}

_pixlock "$@"
`

const fishCompletion = `# pixlock fish completions

set -l commands set unlock rm status images help completion

complete -c pixlock -f

# Commands
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a set -d 'Derive and store the lock secret'
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a unlock -d 'Verify against the stored secret'
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a rm -d 'Remove the stored secret'
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a status -d 'Show key presence and backend'
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a images -d 'List the bundled catalogue'
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a help -d 'Show help for a command'
complete -c pixlock -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate shell completions'

# Flags
complete -c pixlock -n "__fish_seen_subcommand_from set unlock" -o image -d 'Bundled image identifier' -xa '(pixlock images 2>/dev/null)'
complete -c pixlock -n "__fish_seen_subcommand_from set unlock" -o file -d 'Image file from outside the catalogue' -r
complete -c pixlock -n "__fish_seen_subcommand_from set unlock rm status" -o store -d 'Vault file instead of the OS keyring' -r
complete -c pixlock -n "__fish_seen_subcommand_from set unlock images" -o images -d 'Catalogue directory' -r
complete -c pixlock -n "__fish_seen_subcommand_from set unlock rm status" -o v -d 'Verbose logging'

# Completion shells
complete -c pixlock -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`
