// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/elliotbonneville/silt/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/account"
	"github.com/elliotbonneville/silt/ent/aiagent"
	"github.com/elliotbonneville/silt/ent/character"
	"github.com/elliotbonneville/silt/ent/gameevent"
	"github.com/elliotbonneville/silt/ent/gamestate"
	"github.com/elliotbonneville/silt/ent/item"
	"github.com/elliotbonneville/silt/ent/playerlog"
	"github.com/elliotbonneville/silt/ent/room"
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AIAgent is the client for interacting with the AIAgent builders.
	AIAgent *AIAgentClient
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// Character is the client for interacting with the Character builders.
	Character *CharacterClient
	// GameEvent is the client for interacting with the GameEvent builders.
	GameEvent *GameEventClient
	// GameState is the client for interacting with the GameState builders.
	GameState *GameStateClient
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// PlayerLog is the client for interacting with the PlayerLog builders.
	PlayerLog *PlayerLogClient
	// Room is the client for interacting with the Room builders.
	Room *RoomClient
	// TokenUsageLog is the client for interacting with the TokenUsageLog builders.
	TokenUsageLog *TokenUsageLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AIAgent = NewAIAgentClient(c.config)
	c.Account = NewAccountClient(c.config)
	c.Character = NewCharacterClient(c.config)
	c.GameEvent = NewGameEventClient(c.config)
	c.GameState = NewGameStateClient(c.config)
	c.Item = NewItemClient(c.config)
	c.PlayerLog = NewPlayerLogClient(c.config)
	c.Room = NewRoomClient(c.config)
	c.TokenUsageLog = NewTokenUsageLogClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AIAgent:       NewAIAgentClient(cfg),
		Account:       NewAccountClient(cfg),
		Character:     NewCharacterClient(cfg),
		GameEvent:     NewGameEventClient(cfg),
		GameState:     NewGameStateClient(cfg),
		Item:          NewItemClient(cfg),
		PlayerLog:     NewPlayerLogClient(cfg),
		Room:          NewRoomClient(cfg),
		TokenUsageLog: NewTokenUsageLogClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AIAgent:       NewAIAgentClient(cfg),
		Account:       NewAccountClient(cfg),
		Character:     NewCharacterClient(cfg),
		GameEvent:     NewGameEventClient(cfg),
		GameState:     NewGameStateClient(cfg),
		Item:          NewItemClient(cfg),
		PlayerLog:     NewPlayerLogClient(cfg),
		Room:          NewRoomClient(cfg),
		TokenUsageLog: NewTokenUsageLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AIAgent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AIAgent, c.Account, c.Character, c.GameEvent, c.GameState, c.Item,
		c.PlayerLog, c.Room, c.TokenUsageLog,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AIAgent, c.Account, c.Character, c.GameEvent, c.GameState, c.Item,
		c.PlayerLog, c.Room, c.TokenUsageLog,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AIAgentMutation:
		return c.AIAgent.mutate(ctx, m)
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *CharacterMutation:
		return c.Character.mutate(ctx, m)
	case *GameEventMutation:
		return c.GameEvent.mutate(ctx, m)
	case *GameStateMutation:
		return c.GameState.mutate(ctx, m)
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *PlayerLogMutation:
		return c.PlayerLog.mutate(ctx, m)
	case *RoomMutation:
		return c.Room.mutate(ctx, m)
	case *TokenUsageLogMutation:
		return c.TokenUsageLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AIAgentClient is a client for the AIAgent schema.
type AIAgentClient struct {
	config
}

// NewAIAgentClient returns a client for the AIAgent from the given config.
func NewAIAgentClient(c config) *AIAgentClient {
	return &AIAgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aiagent.Hooks(f(g(h())))`.
func (c *AIAgentClient) Use(hooks ...Hook) {
	c.hooks.AIAgent = append(c.hooks.AIAgent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aiagent.Intercept(f(g(h())))`.
func (c *AIAgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.AIAgent = append(c.inters.AIAgent, interceptors...)
}

// Create returns a builder for creating a AIAgent entity.
func (c *AIAgentClient) Create() *AIAgentCreate {
	mutation := newAIAgentMutation(c.config, OpCreate)
	return &AIAgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AIAgent entities.
func (c *AIAgentClient) CreateBulk(builders ...*AIAgentCreate) *AIAgentCreateBulk {
	return &AIAgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AIAgentClient) MapCreateBulk(slice any, setFunc func(*AIAgentCreate, int)) *AIAgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AIAgentCreateBulk{err: fmt.Errorf("calling to AIAgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AIAgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AIAgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AIAgent.
func (c *AIAgentClient) Update() *AIAgentUpdate {
	mutation := newAIAgentMutation(c.config, OpUpdate)
	return &AIAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AIAgentClient) UpdateOne(_m *AIAgent) *AIAgentUpdateOne {
	mutation := newAIAgentMutation(c.config, OpUpdateOne, withAIAgent(_m))
	return &AIAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AIAgentClient) UpdateOneID(id string) *AIAgentUpdateOne {
	mutation := newAIAgentMutation(c.config, OpUpdateOne, withAIAgentID(id))
	return &AIAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AIAgent.
func (c *AIAgentClient) Delete() *AIAgentDelete {
	mutation := newAIAgentMutation(c.config, OpDelete)
	return &AIAgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AIAgentClient) DeleteOne(_m *AIAgent) *AIAgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AIAgentClient) DeleteOneID(id string) *AIAgentDeleteOne {
	builder := c.Delete().Where(aiagent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AIAgentDeleteOne{builder}
}

// Query returns a query builder for AIAgent.
func (c *AIAgentClient) Query() *AIAgentQuery {
	return &AIAgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAIAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a AIAgent entity by its id.
func (c *AIAgentClient) Get(ctx context.Context, id string) (*AIAgent, error) {
	return c.Query().Where(aiagent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AIAgentClient) GetX(ctx context.Context, id string) *AIAgent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AIAgentClient) Hooks() []Hook {
	return c.hooks.AIAgent
}

// Interceptors returns the client interceptors.
func (c *AIAgentClient) Interceptors() []Interceptor {
	return c.inters.AIAgent
}

func (c *AIAgentClient) mutate(ctx context.Context, m *AIAgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AIAgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AIAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AIAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AIAgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AIAgent mutation op: %q", m.Op())
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id string) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id string) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id string) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id string) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// CharacterClient is a client for the Character schema.
type CharacterClient struct {
	config
}

// NewCharacterClient returns a client for the Character from the given config.
func NewCharacterClient(c config) *CharacterClient {
	return &CharacterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `character.Hooks(f(g(h())))`.
func (c *CharacterClient) Use(hooks ...Hook) {
	c.hooks.Character = append(c.hooks.Character, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `character.Intercept(f(g(h())))`.
func (c *CharacterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Character = append(c.inters.Character, interceptors...)
}

// Create returns a builder for creating a Character entity.
func (c *CharacterClient) Create() *CharacterCreate {
	mutation := newCharacterMutation(c.config, OpCreate)
	return &CharacterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Character entities.
func (c *CharacterClient) CreateBulk(builders ...*CharacterCreate) *CharacterCreateBulk {
	return &CharacterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CharacterClient) MapCreateBulk(slice any, setFunc func(*CharacterCreate, int)) *CharacterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CharacterCreateBulk{err: fmt.Errorf("calling to CharacterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CharacterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CharacterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Character.
func (c *CharacterClient) Update() *CharacterUpdate {
	mutation := newCharacterMutation(c.config, OpUpdate)
	return &CharacterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CharacterClient) UpdateOne(_m *Character) *CharacterUpdateOne {
	mutation := newCharacterMutation(c.config, OpUpdateOne, withCharacter(_m))
	return &CharacterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CharacterClient) UpdateOneID(id string) *CharacterUpdateOne {
	mutation := newCharacterMutation(c.config, OpUpdateOne, withCharacterID(id))
	return &CharacterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Character.
func (c *CharacterClient) Delete() *CharacterDelete {
	mutation := newCharacterMutation(c.config, OpDelete)
	return &CharacterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CharacterClient) DeleteOne(_m *Character) *CharacterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CharacterClient) DeleteOneID(id string) *CharacterDeleteOne {
	builder := c.Delete().Where(character.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CharacterDeleteOne{builder}
}

// Query returns a query builder for Character.
func (c *CharacterClient) Query() *CharacterQuery {
	return &CharacterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCharacter},
		inters: c.Interceptors(),
	}
}

// Get returns a Character entity by its id.
func (c *CharacterClient) Get(ctx context.Context, id string) (*Character, error) {
	return c.Query().Where(character.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CharacterClient) GetX(ctx context.Context, id string) *Character {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CharacterClient) Hooks() []Hook {
	return c.hooks.Character
}

// Interceptors returns the client interceptors.
func (c *CharacterClient) Interceptors() []Interceptor {
	return c.inters.Character
}

func (c *CharacterClient) mutate(ctx context.Context, m *CharacterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CharacterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CharacterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CharacterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CharacterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Character mutation op: %q", m.Op())
	}
}

// GameEventClient is a client for the GameEvent schema.
type GameEventClient struct {
	config
}

// NewGameEventClient returns a client for the GameEvent from the given config.
func NewGameEventClient(c config) *GameEventClient {
	return &GameEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gameevent.Hooks(f(g(h())))`.
func (c *GameEventClient) Use(hooks ...Hook) {
	c.hooks.GameEvent = append(c.hooks.GameEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gameevent.Intercept(f(g(h())))`.
func (c *GameEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GameEvent = append(c.inters.GameEvent, interceptors...)
}

// Create returns a builder for creating a GameEvent entity.
func (c *GameEventClient) Create() *GameEventCreate {
	mutation := newGameEventMutation(c.config, OpCreate)
	return &GameEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GameEvent entities.
func (c *GameEventClient) CreateBulk(builders ...*GameEventCreate) *GameEventCreateBulk {
	return &GameEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameEventClient) MapCreateBulk(slice any, setFunc func(*GameEventCreate, int)) *GameEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameEventCreateBulk{err: fmt.Errorf("calling to GameEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GameEvent.
func (c *GameEventClient) Update() *GameEventUpdate {
	mutation := newGameEventMutation(c.config, OpUpdate)
	return &GameEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameEventClient) UpdateOne(_m *GameEvent) *GameEventUpdateOne {
	mutation := newGameEventMutation(c.config, OpUpdateOne, withGameEvent(_m))
	return &GameEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameEventClient) UpdateOneID(id string) *GameEventUpdateOne {
	mutation := newGameEventMutation(c.config, OpUpdateOne, withGameEventID(id))
	return &GameEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GameEvent.
func (c *GameEventClient) Delete() *GameEventDelete {
	mutation := newGameEventMutation(c.config, OpDelete)
	return &GameEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameEventClient) DeleteOne(_m *GameEvent) *GameEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameEventClient) DeleteOneID(id string) *GameEventDeleteOne {
	builder := c.Delete().Where(gameevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameEventDeleteOne{builder}
}

// Query returns a query builder for GameEvent.
func (c *GameEventClient) Query() *GameEventQuery {
	return &GameEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGameEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GameEvent entity by its id.
func (c *GameEventClient) Get(ctx context.Context, id string) (*GameEvent, error) {
	return c.Query().Where(gameevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameEventClient) GetX(ctx context.Context, id string) *GameEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GameEventClient) Hooks() []Hook {
	return c.hooks.GameEvent
}

// Interceptors returns the client interceptors.
func (c *GameEventClient) Interceptors() []Interceptor {
	return c.inters.GameEvent
}

func (c *GameEventClient) mutate(ctx context.Context, m *GameEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GameEvent mutation op: %q", m.Op())
	}
}

// GameStateClient is a client for the GameState schema.
type GameStateClient struct {
	config
}

// NewGameStateClient returns a client for the GameState from the given config.
func NewGameStateClient(c config) *GameStateClient {
	return &GameStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamestate.Hooks(f(g(h())))`.
func (c *GameStateClient) Use(hooks ...Hook) {
	c.hooks.GameState = append(c.hooks.GameState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamestate.Intercept(f(g(h())))`.
func (c *GameStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.GameState = append(c.inters.GameState, interceptors...)
}

// Create returns a builder for creating a GameState entity.
func (c *GameStateClient) Create() *GameStateCreate {
	mutation := newGameStateMutation(c.config, OpCreate)
	return &GameStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GameState entities.
func (c *GameStateClient) CreateBulk(builders ...*GameStateCreate) *GameStateCreateBulk {
	return &GameStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameStateClient) MapCreateBulk(slice any, setFunc func(*GameStateCreate, int)) *GameStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameStateCreateBulk{err: fmt.Errorf("calling to GameStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GameState.
func (c *GameStateClient) Update() *GameStateUpdate {
	mutation := newGameStateMutation(c.config, OpUpdate)
	return &GameStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameStateClient) UpdateOne(_m *GameState) *GameStateUpdateOne {
	mutation := newGameStateMutation(c.config, OpUpdateOne, withGameState(_m))
	return &GameStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameStateClient) UpdateOneID(id int) *GameStateUpdateOne {
	mutation := newGameStateMutation(c.config, OpUpdateOne, withGameStateID(id))
	return &GameStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GameState.
func (c *GameStateClient) Delete() *GameStateDelete {
	mutation := newGameStateMutation(c.config, OpDelete)
	return &GameStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameStateClient) DeleteOne(_m *GameState) *GameStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameStateClient) DeleteOneID(id int) *GameStateDeleteOne {
	builder := c.Delete().Where(gamestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameStateDeleteOne{builder}
}

// Query returns a query builder for GameState.
func (c *GameStateClient) Query() *GameStateQuery {
	return &GameStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGameState},
		inters: c.Interceptors(),
	}
}

// Get returns a GameState entity by its id.
func (c *GameStateClient) Get(ctx context.Context, id int) (*GameState, error) {
	return c.Query().Where(gamestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameStateClient) GetX(ctx context.Context, id int) *GameState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GameStateClient) Hooks() []Hook {
	return c.hooks.GameState
}

// Interceptors returns the client interceptors.
func (c *GameStateClient) Interceptors() []Interceptor {
	return c.inters.GameState
}

func (c *GameStateClient) mutate(ctx context.Context, m *GameStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GameState mutation op: %q", m.Op())
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(_m *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(_m))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id string) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(_m *Item) *ItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id string) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id string) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id string) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// PlayerLogClient is a client for the PlayerLog schema.
type PlayerLogClient struct {
	config
}

// NewPlayerLogClient returns a client for the PlayerLog from the given config.
func NewPlayerLogClient(c config) *PlayerLogClient {
	return &PlayerLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playerlog.Hooks(f(g(h())))`.
func (c *PlayerLogClient) Use(hooks ...Hook) {
	c.hooks.PlayerLog = append(c.hooks.PlayerLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playerlog.Intercept(f(g(h())))`.
func (c *PlayerLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlayerLog = append(c.inters.PlayerLog, interceptors...)
}

// Create returns a builder for creating a PlayerLog entity.
func (c *PlayerLogClient) Create() *PlayerLogCreate {
	mutation := newPlayerLogMutation(c.config, OpCreate)
	return &PlayerLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlayerLog entities.
func (c *PlayerLogClient) CreateBulk(builders ...*PlayerLogCreate) *PlayerLogCreateBulk {
	return &PlayerLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlayerLogClient) MapCreateBulk(slice any, setFunc func(*PlayerLogCreate, int)) *PlayerLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlayerLogCreateBulk{err: fmt.Errorf("calling to PlayerLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlayerLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlayerLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlayerLog.
func (c *PlayerLogClient) Update() *PlayerLogUpdate {
	mutation := newPlayerLogMutation(c.config, OpUpdate)
	return &PlayerLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlayerLogClient) UpdateOne(_m *PlayerLog) *PlayerLogUpdateOne {
	mutation := newPlayerLogMutation(c.config, OpUpdateOne, withPlayerLog(_m))
	return &PlayerLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlayerLogClient) UpdateOneID(id int) *PlayerLogUpdateOne {
	mutation := newPlayerLogMutation(c.config, OpUpdateOne, withPlayerLogID(id))
	return &PlayerLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlayerLog.
func (c *PlayerLogClient) Delete() *PlayerLogDelete {
	mutation := newPlayerLogMutation(c.config, OpDelete)
	return &PlayerLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlayerLogClient) DeleteOne(_m *PlayerLog) *PlayerLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlayerLogClient) DeleteOneID(id int) *PlayerLogDeleteOne {
	builder := c.Delete().Where(playerlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlayerLogDeleteOne{builder}
}

// Query returns a query builder for PlayerLog.
func (c *PlayerLogClient) Query() *PlayerLogQuery {
	return &PlayerLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlayerLog},
		inters: c.Interceptors(),
	}
}

// Get returns a PlayerLog entity by its id.
func (c *PlayerLogClient) Get(ctx context.Context, id int) (*PlayerLog, error) {
	return c.Query().Where(playerlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlayerLogClient) GetX(ctx context.Context, id int) *PlayerLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlayerLogClient) Hooks() []Hook {
	return c.hooks.PlayerLog
}

// Interceptors returns the client interceptors.
func (c *PlayerLogClient) Interceptors() []Interceptor {
	return c.inters.PlayerLog
}

func (c *PlayerLogClient) mutate(ctx context.Context, m *PlayerLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlayerLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlayerLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlayerLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlayerLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlayerLog mutation op: %q", m.Op())
	}
}

// RoomClient is a client for the Room schema.
type RoomClient struct {
	config
}

// NewRoomClient returns a client for the Room from the given config.
func NewRoomClient(c config) *RoomClient {
	return &RoomClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `room.Hooks(f(g(h())))`.
func (c *RoomClient) Use(hooks ...Hook) {
	c.hooks.Room = append(c.hooks.Room, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `room.Intercept(f(g(h())))`.
func (c *RoomClient) Intercept(interceptors ...Interceptor) {
	c.inters.Room = append(c.inters.Room, interceptors...)
}

// Create returns a builder for creating a Room entity.
func (c *RoomClient) Create() *RoomCreate {
	mutation := newRoomMutation(c.config, OpCreate)
	return &RoomCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Room entities.
func (c *RoomClient) CreateBulk(builders ...*RoomCreate) *RoomCreateBulk {
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoomClient) MapCreateBulk(slice any, setFunc func(*RoomCreate, int)) *RoomCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoomCreateBulk{err: fmt.Errorf("calling to RoomClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoomCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Room.
func (c *RoomClient) Update() *RoomUpdate {
	mutation := newRoomMutation(c.config, OpUpdate)
	return &RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoomClient) UpdateOne(_m *Room) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoom(_m))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoomClient) UpdateOneID(id string) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoomID(id))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Room.
func (c *RoomClient) Delete() *RoomDelete {
	mutation := newRoomMutation(c.config, OpDelete)
	return &RoomDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoomClient) DeleteOne(_m *Room) *RoomDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoomClient) DeleteOneID(id string) *RoomDeleteOne {
	builder := c.Delete().Where(room.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoomDeleteOne{builder}
}

// Query returns a query builder for Room.
func (c *RoomClient) Query() *RoomQuery {
	return &RoomQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoom},
		inters: c.Interceptors(),
	}
}

// Get returns a Room entity by its id.
func (c *RoomClient) Get(ctx context.Context, id string) (*Room, error) {
	return c.Query().Where(room.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoomClient) GetX(ctx context.Context, id string) *Room {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoomClient) Hooks() []Hook {
	return c.hooks.Room
}

// Interceptors returns the client interceptors.
func (c *RoomClient) Interceptors() []Interceptor {
	return c.inters.Room
}

func (c *RoomClient) mutate(ctx context.Context, m *RoomMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoomCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoomDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Room mutation op: %q", m.Op())
	}
}

// TokenUsageLogClient is a client for the TokenUsageLog schema.
type TokenUsageLogClient struct {
	config
}

// NewTokenUsageLogClient returns a client for the TokenUsageLog from the given config.
func NewTokenUsageLogClient(c config) *TokenUsageLogClient {
	return &TokenUsageLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenusagelog.Hooks(f(g(h())))`.
func (c *TokenUsageLogClient) Use(hooks ...Hook) {
	c.hooks.TokenUsageLog = append(c.hooks.TokenUsageLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenusagelog.Intercept(f(g(h())))`.
func (c *TokenUsageLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenUsageLog = append(c.inters.TokenUsageLog, interceptors...)
}

// Create returns a builder for creating a TokenUsageLog entity.
func (c *TokenUsageLogClient) Create() *TokenUsageLogCreate {
	mutation := newTokenUsageLogMutation(c.config, OpCreate)
	return &TokenUsageLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenUsageLog entities.
func (c *TokenUsageLogClient) CreateBulk(builders ...*TokenUsageLogCreate) *TokenUsageLogCreateBulk {
	return &TokenUsageLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenUsageLogClient) MapCreateBulk(slice any, setFunc func(*TokenUsageLogCreate, int)) *TokenUsageLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenUsageLogCreateBulk{err: fmt.Errorf("calling to TokenUsageLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenUsageLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenUsageLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenUsageLog.
func (c *TokenUsageLogClient) Update() *TokenUsageLogUpdate {
	mutation := newTokenUsageLogMutation(c.config, OpUpdate)
	return &TokenUsageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenUsageLogClient) UpdateOne(_m *TokenUsageLog) *TokenUsageLogUpdateOne {
	mutation := newTokenUsageLogMutation(c.config, OpUpdateOne, withTokenUsageLog(_m))
	return &TokenUsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenUsageLogClient) UpdateOneID(id string) *TokenUsageLogUpdateOne {
	mutation := newTokenUsageLogMutation(c.config, OpUpdateOne, withTokenUsageLogID(id))
	return &TokenUsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenUsageLog.
func (c *TokenUsageLogClient) Delete() *TokenUsageLogDelete {
	mutation := newTokenUsageLogMutation(c.config, OpDelete)
	return &TokenUsageLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenUsageLogClient) DeleteOne(_m *TokenUsageLog) *TokenUsageLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenUsageLogClient) DeleteOneID(id string) *TokenUsageLogDeleteOne {
	builder := c.Delete().Where(tokenusagelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenUsageLogDeleteOne{builder}
}

// Query returns a query builder for TokenUsageLog.
func (c *TokenUsageLogClient) Query() *TokenUsageLogQuery {
	return &TokenUsageLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenUsageLog},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenUsageLog entity by its id.
func (c *TokenUsageLogClient) Get(ctx context.Context, id string) (*TokenUsageLog, error) {
	return c.Query().Where(tokenusagelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenUsageLogClient) GetX(ctx context.Context, id string) *TokenUsageLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenUsageLogClient) Hooks() []Hook {
	return c.hooks.TokenUsageLog
}

// Interceptors returns the client interceptors.
func (c *TokenUsageLogClient) Interceptors() []Interceptor {
	return c.inters.TokenUsageLog
}

func (c *TokenUsageLogClient) mutate(ctx context.Context, m *TokenUsageLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenUsageLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenUsageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenUsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenUsageLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenUsageLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AIAgent, Account, Character, GameEvent, GameState, Item, PlayerLog, Room,
		TokenUsageLog []ent.Hook
	}
	inters struct {
		AIAgent, Account, Character, GameEvent, GameState, Item, PlayerLog, Room,
		TokenUsageLog []ent.Interceptor
	}
)
