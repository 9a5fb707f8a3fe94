// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the expected request type.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// User-facing messages of error responses.
const (
	MessageRouteNotFound    = "Запрашиваемый ресурс не найден"
	MessageNotFound         = "ID не найден"
	MessageInvalidID        = "Некорректно введен ID"
	MessageInvalidData      = "Переданы некорректные данные"
	MessageForbidden        = "Нет доступа"
	MessageEmailTaken       = "Пользователь с таким email уже зарегистрирован"
	MessageWrongCredentials = "Неправильные почта или пароль"
	MessageUnauthorized     = "Необходима авторизация"
	MessageInternalError    = "На сервере произошла ошибка"
)
