package cmd

import (
	"fmt"

	"github.com/nibzard/tasker/internal/config"
)

// completionCommand prints a completion script for the requested shell on
// stdout, ready to be sourced or installed by the caller.
func completionCommand(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing shell (expected bash|zsh|fish|powershell)")
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	switch args[0] {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	case "powershell", "pwsh":
		fmt.Print(powershellCompletion)
	default:
		return fmt.Errorf("unsupported shell %q (expected bash|zsh|fish|powershell)", args[0])
	}
	return nil
}

const bashCompletion = `# tasker bash completion
# Install: source this file from ~/.bashrc, or copy it into
# /etc/bash_completion.d/tasker
_tasker() {
    local cur prev commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    commands="add list complete delete tui doctor completion version help"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
        return 0
    fi

    case "${prev}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "${cur}") )
            ;;
    esac
    return 0
}
complete -F _tasker tasker
`

const zshCompletion = `#compdef tasker
# tasker zsh completion
# Install: copy to a directory on $fpath as _tasker, e.g.
# ~/.zsh/completions/_tasker
_tasker() {
    local -a commands
    commands=(
        'add:Add a new task'
        'list:List all tasks'
        'complete:Mark a task as complete'
        'delete:Delete a task'
        'tui:Launch the interactive terminal UI'
        'doctor:Check config and tasks file health'
        'completion:Output shell completion'
        'version:Show version information'
        'help:Show help'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case "${words[2]}" in
        completion)
            _values 'shell' bash zsh fish powershell
            ;;
    esac
}
_tasker "$@"
`

const fishCompletion = `# tasker fish completion
# Install: copy to ~/.config/fish/completions/tasker.fish
complete -c tasker -f
complete -c tasker -n '__fish_use_subcommand' -a add -d 'Add a new task'
complete -c tasker -n '__fish_use_subcommand' -a list -d 'List all tasks'
complete -c tasker -n '__fish_use_subcommand' -a complete -d 'Mark a task as complete'
complete -c tasker -n '__fish_use_subcommand' -a delete -d 'Delete a task'
complete -c tasker -n '__fish_use_subcommand' -a tui -d 'Launch the interactive terminal UI'
complete -c tasker -n '__fish_use_subcommand' -a doctor -d 'Check config and tasks file health'
complete -c tasker -n '__fish_use_subcommand' -a completion -d 'Output shell completion'
complete -c tasker -n '__fish_use_subcommand' -a version -d 'Show version information'
complete -c tasker -n '__fish_use_subcommand' -a help -d 'Show help'
complete -c tasker -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish powershell'
`

const powershellCompletion = `# tasker PowerShell completion
# Install: add to your PowerShell profile ($PROFILE)
Register-ArgumentCompleter -Native -CommandName tasker -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $commands = @('add', 'list', 'complete', 'delete', 'tui', 'doctor', 'completion', 'version', 'help')
    $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`
