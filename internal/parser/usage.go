package parser

import (
	"strings"

	"scrolls/internal/commands"
)

var usages = map[string]string{
	commands.AddCommandWord: "add: Adds a person to the address book. " +
		"Parameters: r/ROLE n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: add r/volunteer n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends",
	commands.EditCommandWord: "edit: Edits the person at INDEX of the ROLE list. " +
		"Parameters: INDEX r/ROLE [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]... [nr/NEW_ROLE]\n" +
		"Example: edit 1 r/volunteer p/91234567 e/johndoe@example.com",
	commands.DeleteCommandWord: "delete: Deletes the person at INDEX of the ROLE list. " +
		"Parameters: INDEX r/ROLE\nExample: delete 1 r/befriendee",
	commands.FindCommandWord: "find: Finds persons whose names contain any of the keywords and who carry any of the tags. " +
		"Parameters: [r/ROLE] [KEYWORD]... [t/TAG]...\nExample: find r/volunteer alice bob t/friends",
	commands.ListCommandWord:  "list: Lists every person and log.",
	commands.ClearCommandWord: "clear: Removes every person and log.",
	commands.PairCommandWord: "pair: Pairs a volunteer with a befriendee. " +
		"Parameters: VOLUNTEER_INDEX BEFRIENDEE_INDEX\nExample: pair 1 2",
	commands.UnpairCommandWord: "unpair: Unpairs a volunteer from a befriendee. " +
		"Parameters: VOLUNTEER_INDEX BEFRIENDEE_INDEX\nExample: unpair 1 2",
	commands.LogAddCommandWord: "logadd: Logs an activity of a paired volunteer and befriendee. " +
		"Parameters: VOLUNTEER_INDEX BEFRIENDEE_INDEX t/TITLE s/START_DATE d/DURATION [r/REMARKS]\n" +
		"Example: logadd 1 1 t/Lunch s/2024-03-02 d/2 r/went well",
	commands.LogFindCommandWord: "logfind: Lists the logs of the person at INDEX of the ROLE list, or every log. " +
		"Parameters: [INDEX r/ROLE]\nExample: logfind 1 r/volunteer",
	commands.LogDeleteCommandWord: "logdelete: Deletes the log at INDEX of the displayed log list. " +
		"Aliases: logdel, logrm, logremove. Parameters: INDEX\nExample: logdelete 1",
	commands.UndoCommandWord:   "undo: Reverts the last change.",
	commands.RedoCommandWord:   "redo: Reapplies the last undone change.",
	commands.ExportCommandWord: "export: Writes the current records to the export store as JSON.",
	commands.ExportsCommandWord: "exports: Lists the exports in the export store, oldest first.",
	commands.ImportCommandWord: "import: Replaces the current records with an export. Undo reverts it. " +
		"Parameters: KEY\nExample: import exports/20240506T070809Z-8d5f2c4e-6a1b-4f3e-9c2d-1e0f3a4b5c6d.json",
	commands.ExportDeleteCommandWord: "exportdel: Deletes an export from the export store. " +
		"Parameters: KEY\nExample: exportdel exports/20240506T070809Z-8d5f2c4e-6a1b-4f3e-9c2d-1e0f3a4b5c6d.json",
	commands.HelpCommandWord:   "help: Shows every command.",
	commands.ExitCommandWord:   "exit: Exits the program.",
}

var helpOrder = []string{
	commands.AddCommandWord,
	commands.EditCommandWord,
	commands.DeleteCommandWord,
	commands.FindCommandWord,
	commands.ListCommandWord,
	commands.ClearCommandWord,
	commands.PairCommandWord,
	commands.UnpairCommandWord,
	commands.LogAddCommandWord,
	commands.LogFindCommandWord,
	commands.LogDeleteCommandWord,
	commands.UndoCommandWord,
	commands.RedoCommandWord,
	commands.ExportCommandWord,
	commands.ExportsCommandWord,
	commands.ImportCommandWord,
	commands.ExportDeleteCommandWord,
	commands.HelpCommandWord,
	commands.ExitCommandWord,
}

// Usage returns the usage text for a command word, or "" when unknown.
func Usage(word string) string { return usages[word] }

// HelpText lists the usage of every command.
func HelpText() string {
	lines := make([]string, 0, len(helpOrder))
	for _, w := range helpOrder {
		lines = append(lines, usages[w])
	}
	return strings.Join(lines, "\n\n")
}
