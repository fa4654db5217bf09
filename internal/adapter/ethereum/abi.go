package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI fragments for the two deployed contracts, trimmed to the surface
// this client touches.

const erc20ABIJSON = `[
	{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`

const wrapperABIJSON = `[
	{"inputs":[{"name":"amount","type":"uint256"}],"name":"depositAndEncrypt","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"amount","type":"uint256"}],"name":"withdrawAsPlain","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"requestId","type":"bytes32"},{"name":"requester","type":"address"},{"name":"amount","type":"uint256"},{"name":"actualBalance","type":"uint256"}],"name":"_withdrawCallback","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"recipient","type":"address"},{"name":"amountEuint128","type":"bytes32"},{"name":"inputProof","type":"bytes"}],"name":"encryptedTransfer","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"account","type":"address"}],"name":"getEncryptedBalance","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"requestId","type":"bytes32"}],"name":"isRequestProcessed","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"","type":"bytes32"}],"name":"withdrawalRequests","outputs":[{"name":"requester","type":"address"},{"name":"amount","type":"uint256"},{"name":"processed","type":"bool"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"user","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"Deposit","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"user","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"Withdraw","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"user","type":"address"},{"indexed":false,"name":"amount","type":"uint256"},{"indexed":false,"name":"requestId","type":"bytes32"}],"name":"WithdrawalRequested","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"encryptedAmount","type":"bytes32"}],"name":"EncryptedTransfer","type":"event"}
]`

var (
	erc20ABI   = mustParseABI(erc20ABIJSON)
	wrapperABI = mustParseABI(wrapperABIJSON)
)

func mustParseABI(jsonStr string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(jsonStr))
	if err != nil {
		panic("invalid embedded ABI: " + err.Error())
	}
	return parsed
}
