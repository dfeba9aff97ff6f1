package command

// Feedback and failure messages shown to users.
const (
	MessageDuplicatePatient    = "This patient already exists in the address book"
	MessageInvalidPatientIndex = "The patient index provided is invalid"
	MessageInvalidNoteIndex    = "The note index provided is invalid"
	MessagePatientNotFound     = "The patient could not be found in the address book"
	MessageNotEdited           = "At least one field to edit must be provided."
	MessageInvalidIndex        = "The index provided is invalid."
	MessageAddSuccess          = "New patient added: %s"
	MessageEditSuccess         = "Edited Patient: %s"
	MessageDeleteSuccess       = "Deleted Patient: %s"
	MessageClearSuccess        = "Address book has been cleared!"
	MessageListSuccess         = "Listed all patients"
	MessagePatientsListed      = "%d patients listed!"
	MessageAddNoteSuccess      = "Added note to Patient: %s"
	MessageDeleteNoteSuccess   = "Deleted note %d from Patient: %s"
	MessageViewSuccess         = "Viewing Patient: %s"
	MessageEmptyNote           = "Note cannot be empty"
	messageNoNotes             = "None"
	messageNotesHeader         = "Notes:"
)
