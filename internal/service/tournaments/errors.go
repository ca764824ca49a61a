package tournaments

import "errors"

var (
	// ErrTournamentNotFound возвращается, когда турнир не найден
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrAlreadyRegistered возвращается при повторной регистрации в ту же лигу
	ErrAlreadyRegistered = errors.New("already registered in this league")

	// ErrLeagueUnavailable возвращается, когда лига не проводится в турнире
	ErrLeagueUnavailable = errors.New("league is not available in this tournament")

	// ErrRegistrationClosed возвращается, когда турнир не принимает заявки
	ErrRegistrationClosed = errors.New("registration is closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
