package domain

import "errors"

// Domain errors.
var (
	ErrRaidNotFound      = errors.New("raid non trouvé")
	ErrStartInPast       = errors.New("la date et l'heure doivent être dans le futur")
	ErrInvalidTimeFormat = errors.New("format d'heure invalide")
	ErrUnknownRaidType   = errors.New("type de raid inconnu")
	ErrUnknownTimezone   = errors.New("fuseau horaire inconnu")
)
