package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Намеренно не различает "нет пользователя" и "неверный пароль"
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidToken возвращается при некорректном или просроченном токене
	ErrInvalidToken = errors.New("invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
