package i18n

// Reservation flow messages

// MsgMissingFields is shown when required reservation fields are empty
func MsgMissingFields(locale Locale) string {
	if locale == EN {
		return "Please fill in all required fields"
	}
	return "Veuillez remplir tous les champs obligatoires"
}

// MsgInvalidEmail is shown when the email address does not look like an address
func MsgInvalidEmail(locale Locale) string {
	if locale == EN {
		return "Please enter a valid email address"
	}
	return "Veuillez saisir une adresse email valide"
}

// MsgDeliveryFailed is shown when the notification email could not be sent
func MsgDeliveryFailed(locale Locale) string {
	if locale == EN {
		return "Failed to send your reservation. Please try again later."
	}
	return "L'envoi de votre réservation a échoué. Veuillez réessayer plus tard."
}

// MsgUnexpectedError is the generic fallback for anything else that goes wrong
func MsgUnexpectedError(locale Locale) string {
	if locale == EN {
		return "An unexpected error occurred. Please try again later."
	}
	return "Une erreur inattendue s'est produite. Veuillez réessayer plus tard."
}

// MsgReservationSent confirms a dispatched reservation request
func MsgReservationSent(locale Locale) string {
	if locale == EN {
		return "Your reservation request has been sent. We will confirm shortly."
	}
	return "Votre demande de réservation a été envoyée. Nous vous confirmerons rapidement."
}
