package service

import (
	"encoding/json"
	"time"

	"recipe-app/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	insertUser = store.CreateUser
	updateUserPassword = store.UpdateUserPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	getUserByEmail = store.GetUserByEmail
	getOrCreateAuthToken = store.GetOrCreateAuthToken
	newTokenKey = func() string { return ulid.Make().String() }
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	getPrincipalByTokenKey = store.GetPrincipalByTokenKey
}
